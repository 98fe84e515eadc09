package maze

// IsReachable reports whether an Open path joins start and goal in g.
// Paths move between 4-connected Open cells. The grid is not modified.
func IsReachable(g *Grid, start, goal Position) bool {
	if !g.IsOpen(start.X, start.Y) || !g.IsOpen(goal.X, goal.Y) {
		return false
	}

	visited := make([][]bool, g.size)
	for y := range visited {
		visited[y] = make([]bool, g.size)
	}

	queue := []Position{start}
	visited[start.Y][start.X] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			return true
		}

		for _, d := range Steps {
			next := cur.Add(d.DX, d.DY)
			if !g.IsOpen(next.X, next.Y) || visited[next.Y][next.X] {
				continue
			}
			visited[next.Y][next.X] = true
			queue = append(queue, next)
		}
	}

	return false
}
