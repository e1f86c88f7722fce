package metrics

import "time"

type MoveMetric struct {
	Step      int
	Player    int // Player ID
	Action    int // Pit index
	ExtraTurn bool
	Duration  time.Duration
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Return0        float64
	Return1        float64
	Score0         int
	Score1         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates per-move timing for one game and folds it into
// the game metric on completion.
type Collector interface {
	StartGame(startingPlayer int)
	StartMove()
	EndMove(player, action int, extraTurn bool)
	Complete(return0, return1 float64, score0, score1 int) (GameMetric, []MoveMetric)
}

type collector struct {
	startingPlayer int
	gameStart      time.Time
	moveStart      time.Time
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) StartGame(startingPlayer int) {
	c.startingPlayer = startingPlayer
	c.gameStart = time.Now()
	c.moves = nil
}

func (c *collector) StartMove() {
	c.moveStart = time.Now()
}

func (c *collector) EndMove(player, action int, extraTurn bool) {
	c.moves = append(c.moves, MoveMetric{
		Step:      len(c.moves) + 1,
		Player:    player,
		Action:    action,
		ExtraTurn: extraTurn,
		Duration:  time.Since(c.moveStart),
	})
}

func (c *collector) Complete(return0, return1 float64, score0, score1 int) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: c.startingPlayer,
		Return0:        return0,
		Return1:        return1,
		Score0:         score0,
		Score1:         score1,
		StartTime:      c.gameStart,
		EndTime:        end,
		Duration:       end.Sub(c.gameStart),
		TotalMoves:     len(c.moves),
	}, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) StartGame(startingPlayer int)       {}
func (d *dummyCollector) StartMove()                         {}
func (d *dummyCollector) EndMove(player, action int, e bool) {}

func (d *dummyCollector) Complete(r0, r1 float64, s0, s1 int) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
