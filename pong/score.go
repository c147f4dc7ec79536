package pong

// ScoreBoard tracks both players' points for one match.
type ScoreBoard struct {
	Left         int
	Right        int
	WinningScore int
}

// NewScoreBoard returns a zeroed board that ends at winningScore.
func NewScoreBoard(winningScore int) *ScoreBoard {
	return &ScoreBoard{WinningScore: winningScore}
}

// RecordPoint credits a point to the given side. Once the match has a
// winner the board is frozen and further points are ignored.
func (s *ScoreBoard) RecordPoint(side Side) {
	if _, over := s.Winner(); over {
		return
	}
	switch side {
	case LeftSide:
		s.Left++
	case RightSide:
		s.Right++
	}
}

// Winner returns the side that reached the winning score, if any.
func (s *ScoreBoard) Winner() (Side, bool) {
	if s.Left >= s.WinningScore {
		return LeftSide, true
	}
	if s.Right >= s.WinningScore {
		return RightSide, true
	}
	return NoSide, false
}

// Reset zeroes both counters for a new match.
func (s *ScoreBoard) Reset() {
	s.Left = 0
	s.Right = 0
}
