package maze

// Rand is the source of randomness used while carving.
// *rand.Rand from math/rand satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

// Step is a unit move along one axis.
type Step struct {
	DX, DY int
}

// Steps lists the four axis-aligned moves: up, down, left, right.
var Steps = [4]Step{
	{DX: 0, DY: -1},
	{DX: 0, DY: 1},
	{DX: -1, DY: 0},
	{DX: 1, DY: 0},
}

// Carve opens a randomized tree of cells in g starting from (0,0).
//
// It is a backtracking depth-first search over the cells two steps apart:
// whenever the cell two steps away is still a Wall, both it and the cell in
// between are opened and the far cell is pushed on the frontier. The popped
// cell is not pushed back. The direction order for every popped cell is a
// uniform shuffle drawn from rng.
func Carve(g *Grid, rng Rand) {
	g.cells[0][0] = Open
	stack := []Position{{X: 0, Y: 0}}

	for len(stack) > 0 {
		cur := pop(&stack)

		dirs := Steps
		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		for _, d := range dirs {
			next := cur.Add(2*d.DX, 2*d.DY)
			if !g.InBounds(next.X, next.Y) || g.cells[next.Y][next.X] != Wall {
				continue
			}
			g.cells[next.Y][next.X] = Open
			g.cells[cur.Y+d.DY][cur.X+d.DX] = Open
			stack = append(stack, next)
		}
	}
}

// pop removes and returns the last element of a stack of positions.
func pop(s *[]Position) Position {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
