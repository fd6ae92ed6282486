package graph

import (
	"github.com/mlcsrgraph/mlcsr/internal/logging"
	"github.com/mlcsrgraph/mlcsr/propcol"
)

// BindNodeColumnU32 looks up a 32-bit node property column an analytic
// client declares as required. A missing or wrongly-widthed column prints
// the property name and aborts the process (spec §7: "a required-but-
// missing property at analytic bind time is a fatal error"), mirroring
// C1's OOM abort and C3's invariant-violation abort.
func (g *Graph) BindNodeColumnU32(column string) {
	if err := g.checkNodeColumn(column, propcol.TypeU32); err != nil {
		logging.L().Fatalw("required node property missing", "property", column)
	}
}

// BindNodeColumnU64 is BindNodeColumnU32 for 64-bit node columns.
func (g *Graph) BindNodeColumnU64(column string) {
	if err := g.checkNodeColumn(column, propcol.TypeU64); err != nil {
		logging.L().Fatalw("required node property missing", "property", column)
	}
}

// BindEdgeColumnU32 is BindNodeColumnU32 for 32-bit edge columns.
func (g *Graph) BindEdgeColumnU32(column string) {
	if err := g.checkEdgeColumn(column, propcol.TypeU32); err != nil {
		logging.L().Fatalw("required edge property missing", "property", column)
	}
}

// BindEdgeColumnU64 is BindNodeColumnU32 for 64-bit edge columns.
func (g *Graph) BindEdgeColumnU64(column string) {
	if err := g.checkEdgeColumn(column, propcol.TypeU64); err != nil {
		logging.L().Fatalw("required edge property missing", "property", column)
	}
}
