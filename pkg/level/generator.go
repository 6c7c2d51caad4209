package level

// Generator mutates a level in place. Maze, room and dungeon passes live
// outside this module and plug in through this interface.
type Generator[T any] interface {
	Generate(l *Level[T])
}

// GeneratorFunc adapts an ordinary function to Generator.
type GeneratorFunc[T any] func(l *Level[T])

// Generate calls f(l).
func (f GeneratorFunc[T]) Generate(l *Level[T]) { f(l) }
