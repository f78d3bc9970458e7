package launch

type part struct {
	dy, dx int
	r      rune
	role   Role
}

var hull = []part{
	{0, 0, '^', RoleRocketTip},

	{1, -1, '/', RoleRocketBody},
	{1, 0, '|', RoleRocketBody},
	{1, 1, '\\', RoleRocketBody},

	{2, -2, '/', RoleRocketBody},
	{2, -1, '█', RoleRocketEngine},
	{2, 0, '█', RoleRocketEngine},
	{2, 1, '█', RoleRocketEngine},
	{2, 2, '\\', RoleRocketBody},

	{3, -1, '█', RoleRocketBody},
	{3, 0, '█', RoleRocketBody},
	{3, 1, '█', RoleRocketBody},

	{4, -2, '[', RoleRocketEngine},
	{4, -1, '=', RoleRocketEngine},
	{4, 0, '=', RoleRocketEngine},
	{4, 1, '=', RoleRocketEngine},
	{4, 2, ']', RoleRocketEngine},

	// fins
	{4, -3, '/', RoleRocketFins},
	{5, -4, '/', RoleRocketFins},
	{4, 3, '\\', RoleRocketFins},
	{5, 4, '\\', RoleRocketFins},
}

var flameGlyphs = [3]rune{'|', '│', '║'}

// FlamePhase returns the exhaust animation phase for a frame number
func FlamePhase(frame int) int {
	return frame % 3
}

// DrawRocket draws the rocket with its tip at (x, y) and the exhaust
// animated by frame. Parts outside the frame are clipped.
func DrawRocket(f *Frame, x, y, frame int) {
	for _, p := range hull {
		f.Set(x+p.dx, y+p.dy, p.r, p.role)
	}

	phase := FlamePhase(frame)
	flame := flameGlyphs[phase]

	for dx := -1; dx <= 1; dx++ {
		f.Set(x+dx, y+5, flame, RoleFlameHot)
	}

	f.Set(x-2, y+6, '\\', RoleFlameInner)
	for dx := -1; dx <= 1; dx++ {
		f.Set(x+dx, y+6, flame, RoleFlameInner)
	}
	f.Set(x+2, y+6, '/', RoleFlameInner)

	// outer flame flickers off on phase 1
	if phase == 1 {
		return
	}
	f.Set(x-3, y+7, '\\', RoleFlameOuter)
	for dx := -2; dx <= 2; dx++ {
		f.Set(x+dx, y+7, flame, RoleFlameOuter)
	}
	f.Set(x+3, y+7, '/', RoleFlameOuter)
}
