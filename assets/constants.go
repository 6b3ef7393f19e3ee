package assets

// Screen and panel layout.
const (
	ScreenWidth  = 80
	ScreenHeight = 50
	MapWidth     = 80
	MapHeight    = 43

	BarWidth    = 20
	PanelHeight = 7
	PanelY      = ScreenHeight - PanelHeight
	MsgX        = BarWidth + 2
	MsgWidth    = ScreenWidth - BarWidth - 2
	MsgHeight   = PanelHeight - 1
)

// Dungeon generation defaults.
const (
	RoomMaxSize     = 10
	RoomMinSize     = 6
	MaxRooms        = 30
	MaxRoomMonsters = 3
)

// Field of view and pacing.
const (
	TorchRadius   = 10
	FOVLightWalls = true
	LimitFPS      = 20
)

// Welcome is shown when a session starts.
const Welcome = "W E L C O M E ! Prepare to perish in the Tombs of the Ancient Kings."
