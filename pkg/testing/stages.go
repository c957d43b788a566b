package testing

// AssertStageOrder fails t if, within any pass, a stage was called after a
// later stage. Within one pass the window must call event, lifecycle,
// update, layout and paint in that order; a stage may repeat or be skipped.
func AssertStageOrder(t TestingT, records []StageRecord) {
	t.Helper()
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		if prev.Pass == cur.Pass && cur.Stage < prev.Stage {
			t.Errorf("pass %d: %s (%s) ran after %s (%s)",
				cur.Pass, cur.Stage, cur.Detail, prev.Stage, prev.Detail)
		}
	}
}
