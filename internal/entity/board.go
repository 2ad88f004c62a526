package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	// BoardSize is the edge length of the cube: 3 layers of 3x3 cells.
	BoardSize = 3
)

// Coord addresses a single cell of the cube as (layer, row, col), each in [0, BoardSize).
type Coord struct {
	Layer int `json:"layer"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// Board is the 3x3x3 cell grid, indexed [layer][row][col].
// The zero value is an empty board.
type Board [BoardSize][BoardSize][BoardSize]string

// WinningLines is the fixed table of all 49 straight lines through the cube:
// 9 in-layer rows, 9 in-layer columns, 6 in-layer diagonals, 9 cross-layer
// verticals, 6 column-plane diagonals, 6 row-plane diagonals and 4 cube
// diagonals. Built once at init and never mutated.
var WinningLines = buildWinningLines()

func buildWinningLines() [][3]Coord {
	lines := make([][3]Coord, 0, 49)

	// in-layer rows and columns
	for layer := 0; layer < BoardSize; layer++ {
		for i := 0; i < BoardSize; i++ {
			lines = append(lines,
				[3]Coord{{layer, i, 0}, {layer, i, 1}, {layer, i, 2}},
			)
		}
		for i := 0; i < BoardSize; i++ {
			lines = append(lines,
				[3]Coord{{layer, 0, i}, {layer, 1, i}, {layer, 2, i}},
			)
		}
	}

	// in-layer diagonals
	for layer := 0; layer < BoardSize; layer++ {
		lines = append(lines,
			[3]Coord{{layer, 0, 0}, {layer, 1, 1}, {layer, 2, 2}},
			[3]Coord{{layer, 0, 2}, {layer, 1, 1}, {layer, 2, 0}},
		)
	}

	// cross-layer verticals
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			lines = append(lines,
				[3]Coord{{0, row, col}, {1, row, col}, {2, row, col}},
			)
		}
	}

	// cross-layer diagonals in each column plane (col fixed, layer and row vary)
	for col := 0; col < BoardSize; col++ {
		lines = append(lines,
			[3]Coord{{0, 0, col}, {1, 1, col}, {2, 2, col}},
			[3]Coord{{0, 2, col}, {1, 1, col}, {2, 0, col}},
		)
	}

	// cross-layer diagonals in each row plane (row fixed, layer and col vary)
	for row := 0; row < BoardSize; row++ {
		lines = append(lines,
			[3]Coord{{0, row, 0}, {1, row, 1}, {2, row, 2}},
			[3]Coord{{0, row, 2}, {1, row, 1}, {2, row, 0}},
		)
	}

	// cube diagonals
	lines = append(lines,
		[3]Coord{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}},
		[3]Coord{{0, 0, 2}, {1, 1, 1}, {2, 2, 0}},
		[3]Coord{{0, 2, 0}, {1, 1, 1}, {2, 0, 2}},
		[3]Coord{{0, 2, 2}, {1, 1, 1}, {2, 0, 0}},
	)

	return lines
}

func (that *Board) Cell(c Coord) string {
	return that[c.Layer][c.Row][c.Col]
}

// SetCell writes a symbol into a cell. Bounds and occupancy are the caller's
// responsibility; move validation lives in the engine.
func (that *Board) SetCell(c Coord, symbol string) {
	that[c.Layer][c.Row][c.Col] = symbol
}

// CheckWin scans the winning-line table in declared order and returns the
// first line fully occupied by the given symbol. Only the mover's symbol
// needs checking after a move: a placement can only complete the mover's
// own lines.
func (that *Board) CheckWin(symbol string) ([3]Coord, bool) {
	if symbol == EmptyCell {
		return [3]Coord{}, false
	}

	for _, line := range WinningLines {
		if that.Cell(line[0]) == symbol && that.Cell(line[1]) == symbol && that.Cell(line[2]) == symbol {
			return line, true
		}
	}

	return [3]Coord{}, false
}

// CheckDraw reports whether all 27 cells are occupied. Only meaningful once
// CheckWin for the mover came back empty.
func (that *Board) CheckDraw() bool {
	for layer := range that {
		for row := range that[layer] {
			for _, cell := range that[layer][row] {
				if cell == EmptyCell {
					return false
				}
			}
		}
	}

	return true
}

// ToggleSymbol returns the opposing mark.
func ToggleSymbol(symbol string) string {
	if symbol == PlayerX {
		return PlayerO
	}
	return PlayerX
}
