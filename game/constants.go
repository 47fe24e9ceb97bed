package game

// Actor dimensions in world units.
const (
	ActorHeight            int32 = 762
	ActorHeightCrawl       int32 = 400
	ActorHeightMonkey      int32 = 850
	ActorHeightStretch     int32 = 870
	ActorHeightSurfaceSwim int32 = 700
	ActorHeadroom          int32 = 160
	ActorRadius            int32 = 100
	ActorRadiusCrawl       int32 = 200

	// SlopeDifference is the largest vertical correction applied while hanging in one tick.
	SlopeDifference int32 = 60
)

// GrabThreshold is the largest facing deviation from a ledge that still allows a grab.
var GrabThreshold = Degrees(35)
