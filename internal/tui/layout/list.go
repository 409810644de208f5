package layout

// CalculateListHeight returns the number of result rows that fit in a
// terminal of the given height.
func CalculateListHeight(termHeight int, cfg ListConfig) int {
	h := termHeight - cfg.HeightReduction
	if h < cfg.MinHeight {
		return cfg.MinHeight
	}
	return h
}

// CalculateRowWidth returns the usable width of a rendered row.
func CalculateRowWidth(termWidth int, cfg ListConfig) int {
	w := termWidth - cfg.ContentPadding
	if w < 0 {
		return 0
	}
	return w
}

// ScrollOffset returns the first visible row so that cursor stays inside a
// window of height rows, moving the previous offset as little as possible.
func ScrollOffset(offset, cursor, height, total int) int {
	if height <= 0 || total <= height {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	if maxOffset := total - height; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
