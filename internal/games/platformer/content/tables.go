package content

// slab is a compact platform row for the hand-authored tables.
type slab struct {
	x, y, w, h float64
	kind       PlatformKind
}

const (
	brick = PlatformBrick
	cloud = PlatformCloud
	pipe  = PlatformPipe
)

// handLevels holds the authored layouts for levels 1-8, ground excluded.
var handLevels = [...][]slab{
	// 1: gentle introduction
	{
		{300, 400, 128, 32, brick},
		{500, 350, 96, 32, cloud},
		{700, 300, 128, 32, brick},
		{900, 400, 64, 64, pipe},
		{1100, 350, 160, 32, brick},
		{1400, 250, 96, 32, cloud},
		{1600, 300, 128, 32, brick},
		{1800, 400, 96, 32, brick},
		{2000, 200, 160, 32, cloud},
		{2300, 350, 128, 32, brick},
		{2600, 280, 96, 32, cloud},
		{2900, 400, 64, 96, pipe},
	},
	// 2
	{
		{250, 450, 96, 32, brick},
		{400, 380, 64, 32, cloud},
		{550, 320, 96, 32, brick},
		{700, 260, 64, 32, cloud},
		{850, 350, 128, 32, brick},
		{1050, 200, 96, 32, cloud},
		{1250, 280, 160, 32, brick},
		{1500, 180, 64, 32, cloud},
		{1650, 320, 96, 32, brick},
		{1850, 150, 128, 32, cloud},
		{2100, 250, 96, 32, brick},
		{2350, 380, 160, 32, brick},
		{2650, 200, 96, 32, cloud},
		{2900, 450, 96, 96, pipe},
	},
	// 3
	{
		{200, 480, 64, 32, cloud},
		{350, 420, 64, 32, brick},
		{480, 360, 64, 32, cloud},
		{620, 300, 64, 32, brick},
		{780, 180, 96, 32, cloud},
		{950, 240, 64, 32, brick},
		{1100, 320, 128, 32, brick},
		{1300, 160, 64, 32, cloud},
		{1450, 280, 96, 32, brick},
		{1650, 120, 64, 32, cloud},
		{1800, 200, 128, 32, brick},
		{2000, 350, 96, 32, cloud},
		{2200, 180, 64, 32, brick},
		{2400, 280, 160, 32, brick},
		{2700, 400, 96, 32, cloud},
		{2950, 320, 128, 128, pipe},
	},
	// 4: staircases and ceilings
	{
		{200, 500, 128, 32, brick},
		{400, 450, 64, 32, brick},
		{500, 400, 64, 32, brick},
		{600, 350, 64, 32, brick},
		{700, 300, 128, 32, brick},
		{900, 250, 64, 32, brick},
		{1100, 200, 96, 32, brick},
		{1300, 150, 64, 32, brick},
		{1500, 200, 128, 32, brick},
		{1700, 350, 96, 32, brick},
		{1900, 300, 64, 32, brick},
		{2100, 250, 128, 32, brick},
		{2400, 400, 96, 32, brick},
		{2700, 200, 160, 32, brick},
		{3000, 350, 128, 32, brick},
		{800, 100, 128, 32, brick},
		{1200, 80, 96, 32, brick},
		{1800, 120, 160, 32, brick},
		{2500, 100, 128, 32, brick},
	},
	// 5: towers
	{
		{300, 480, 96, 32, brick},
		{500, 420, 64, 32, brick},
		{700, 360, 96, 32, brick},
		{900, 300, 64, 32, brick},
		{1100, 240, 128, 32, brick},
		{1350, 180, 64, 32, brick},
		{1550, 240, 96, 32, brick},
		{1750, 300, 128, 32, brick},
		{2000, 200, 64, 32, brick},
		{2200, 280, 96, 32, brick},
		{2450, 160, 128, 32, brick},
		{2700, 320, 96, 32, brick},
		{2950, 240, 160, 32, brick},
		{1000, 150, 32, 150, pipe},
		{2000, 100, 32, 200, pipe},
		{2800, 120, 32, 180, pipe},
	},
	// 6: clouds up high
	{
		{250, 450, 96, 32, cloud},
		{450, 380, 64, 32, cloud},
		{650, 320, 96, 32, cloud},
		{850, 260, 64, 32, cloud},
		{1050, 200, 128, 32, cloud},
		{1300, 140, 64, 32, cloud},
		{1500, 180, 96, 32, cloud},
		{1750, 120, 128, 32, cloud},
		{2000, 200, 64, 32, cloud},
		{2250, 160, 96, 32, cloud},
		{2500, 100, 128, 32, cloud},
		{2750, 180, 96, 32, cloud},
		{3000, 240, 160, 32, cloud},
		{1200, 60, 64, 32, cloud},
		{2100, 40, 96, 32, cloud},
		{2900, 80, 128, 32, cloud},
	},
	// 7: dunes
	{
		{200, 480, 128, 32, brick},
		{400, 420, 96, 32, brick},
		{600, 360, 64, 32, brick},
		{800, 300, 128, 32, brick},
		{1050, 240, 96, 32, brick},
		{1300, 180, 64, 32, brick},
		{1500, 240, 128, 32, brick},
		{1750, 300, 96, 32, brick},
		{2000, 200, 64, 32, brick},
		{2250, 280, 128, 32, brick},
		{2500, 160, 96, 32, brick},
		{2750, 320, 64, 32, brick},
		{3000, 240, 160, 32, brick},
		{1200, 400, 32, 32, brick},
		{1232, 380, 32, 32, brick},
		{1264, 360, 32, 32, brick},
		{1296, 380, 32, 32, brick},
		{1328, 400, 32, 32, brick},
	},
	// 8: cloud run with spikes
	{
		{300, 460, 128, 32, cloud},
		{500, 400, 96, 32, cloud},
		{700, 340, 64, 32, cloud},
		{900, 280, 128, 32, cloud},
		{1150, 220, 96, 32, cloud},
		{1400, 160, 64, 32, cloud},
		{1600, 220, 128, 32, cloud},
		{1850, 280, 96, 32, cloud},
		{2100, 180, 64, 32, cloud},
		{2350, 240, 128, 32, cloud},
		{2600, 160, 96, 32, cloud},
		{2850, 300, 64, 32, cloud},
		{3100, 220, 160, 32, cloud},
		{800, 500, 32, 16, brick},
		{1300, 480, 32, 16, brick},
		{2000, 460, 32, 16, brick},
		{2700, 500, 32, 16, brick},
	},
}

// HandLevelCount is the number of authored layouts.
const HandLevelCount = len(handLevels)
