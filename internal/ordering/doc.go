// Package ordering builds tile orderings for the tiles package.
//
// Every ordering returned here satisfies ordering[newIndex] = sourceIndex and is
// a permutation of 0..n-1, so it passes tiles.Valid for any grid with n tiles.
package ordering
