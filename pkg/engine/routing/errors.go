package routing

import (
	"errors"
	"fmt"

	da "github.com/lintang-b-s/navigatorx-astar/pkg/datastructure"
)

var (
	// ErrUnknownNode. a query endpoint is missing from the graph or has no adjacency entries
	ErrUnknownNode = errors.New("unknown node")
	// ErrPathNotFound. the search ended without reaching the goal
	ErrPathNotFound = errors.New("path not found")
	// ErrSearchBudgetExhausted. the expansion budget ran out before the goal was reached.
	// it is a bounded-search outcome and matches ErrPathNotFound under errors.Is.
	ErrSearchBudgetExhausted = fmt.Errorf("%w: search budget exhausted", ErrPathNotFound)
)

func unroutableError(u da.Index) error {
	return fmt.Errorf("%w: %w: vertex %d has no adjacency entries", ErrPathNotFound, ErrUnknownNode, u)
}
