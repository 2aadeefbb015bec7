package component

// CharacterMovement is a walking pawn driven by input. Mass is the
// controller mass used for external forces, independent of the collider.
type CharacterMovement struct {
	Mass        float64
	MoveSpeed   float64
	JumpSpeed   float64
	Grounded    bool
	GroundGrace int
}

var CharacterMovementComponent = NewComponent[CharacterMovement]()
