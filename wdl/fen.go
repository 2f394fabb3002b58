package wdl

import (
	"fmt"

	"github.com/corentings/chess/v2"
)

// SideToMove returns the color to move in the given FEN.
func SideToMove(fen string) (chess.Color, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return chess.NoColor, fmt.Errorf("parse fen: %w", err)
	}
	return chess.NewGame(opt).Position().Turn(), nil
}

// Mover returns the color that produced the given position, i.e. the
// opposite of the side to move. Callers that only hold the FEN they queried
// after a move was played can recover the mover this way.
func Mover(fenAfter string) (chess.Color, error) {
	stm, err := SideToMove(fenAfter)
	if err != nil {
		return chess.NoColor, err
	}
	return stm.Other(), nil
}
