package entity

// EnemyLaserOffsetX is how far left of the enemy's X its lasers spawn.
const EnemyLaserOffsetX = 25

// Enemy is a descending ship. Its look is selected by Color.
type Enemy struct {
	Ship
	Color Color
}

// NewEnemy creates an enemy at (x, y) using the sprites registered for c.
// Returns ErrInvalidColorKind if c is not in the table.
func NewEnemy(x, y int, c Color, table Appearances) (*Enemy, error) {
	app, err := table.Lookup(c)
	if err != nil {
		return nil, err
	}
	return &Enemy{
		Ship:  newShip(x, y, DefaultHealth, app.Ship, app.Laser),
		Color: c,
	}, nil
}

// Fire spawns a laser EnemyLaserOffsetX pixels left of the enemy.
func (e *Enemy) Fire() bool {
	return e.fireAt(e.X-EnemyLaserOffsetX, e.Y)
}

// Move moves the enemy down by vel. Enemies never drift horizontally.
func (e *Enemy) Move(vel int) {
	e.Y += vel
}

// Bottom returns the Y coordinate of the enemy's lower edge
func (e *Enemy) Bottom() int {
	return e.Y + e.Height()
}
