package component

// Bounds makes an entity visible to area overlap queries as a sphere of
// Radius around its transform.
type Bounds struct {
	Radius float64
}

var BoundsComponent = NewComponent[Bounds]()

// AreaTrigger is a spherical overlap volume. Entities whose bounds touch it
// are reported to the area's subscribers on enter and exit.
type AreaTrigger struct {
	Radius float64
}

var AreaTriggerComponent = NewComponent[AreaTrigger]()
