package constants

const (
	// PaddleWidth is the width of a paddle
	PaddleWidth float64 = 20.0
	// PaddleHeight is the height of a paddle
	PaddleHeight float64 = 100.0
	// PaddleWidthHalf is the horizontal half-extent of a paddle
	PaddleWidthHalf float64 = PaddleWidth * 0.5
	// PaddleHeightHalf is the vertical half-extent of a paddle
	PaddleHeightHalf float64 = PaddleHeight * 0.5
	// PlayerSpeed is the speed at which players move their paddles
	PlayerSpeed float64 = 600.0
	// Padding is the horizontal gap between a paddle and its edge of the field
	Padding float64 = 40.0

	// BallSize is the side length of the ball
	BallSize float64 = 25.0
	// BallSizeHalf is the half-extent of the ball
	BallSizeHalf float64 = BallSize * 0.5
	// BallSpeed is the speed of the ball on each axis
	BallSpeed float64 = 300.0

	// DefaultFieldWidth is the default width of the play field
	DefaultFieldWidth float64 = 800.0
	// DefaultFieldHeight is the default height of the play field
	DefaultFieldHeight float64 = 600.0

	// ScoreFormat is the format of the score line, player 1 first
	ScoreFormat string = "%d                %d"
	// ScoreX is the score line position as a fraction of the field width
	ScoreX float64 = 0.45
	// ScoreY is the score line position as a fraction of the field height
	ScoreY float64 = 0.10
)
