package deadline

const (
	// DefaultMaxDays is the default horizon: the last step is due at most four weeks after the start.
	DefaultMaxDays = 28

	// DefaultInitialOffsetDays is the number of days before the first step can be due.
	DefaultInitialOffsetDays = 2

	// MinTaskDays and MaxTaskDays bound the days a single step may consume.
	MinTaskDays = 1
	MaxTaskDays = 7
)

const (
	BaseDifficulty = 1.0
	MinDifficulty  = 1.0
	MaxDifficulty  = 5.0

	highWeight   = 2.0
	mediumWeight = 1.0
	lowWeight    = 0.5
)
