package tether

// Tick runs one simulation step: the controller half first (drain length
// input, aim reachability), then the authority half (range and tearing
// checks, tension, visual length).
func (t *Tool) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if t.role.Has(RoleController) {
		t.tickController(dt)
	}
	if t.role.Has(RoleAuthority) {
		t.tickAuthority(dt)
	}
}
