package main

// handleBrowseNavigation moves the selection in the sample browser. Returns
// false if key is not a navigation key.
func (m *model) handleBrowseNavigation(key string) bool {
	if len(m.fileList) == 0 {
		return isBrowseNavigationKey(key)
	}

	last := len(m.fileList) - 1
	switch key {
	case "k", "up":
		if m.selectedFileIndex > 0 {
			m.selectedFileIndex--
		} else {
			m.selectedFileIndex = last
		}
	case "j", "down":
		if m.selectedFileIndex < last {
			m.selectedFileIndex++
		} else {
			m.selectedFileIndex = 0
		}
	case "g", "home":
		m.selectedFileIndex = 0
	case "G", "end":
		m.selectedFileIndex = last
	case "pgup":
		m.selectedFileIndex = max(m.selectedFileIndex-m.browsePageSize(), 0)
	case "pgdown":
		m.selectedFileIndex = min(m.selectedFileIndex+m.browsePageSize(), last)
	default:
		return false
	}
	return true
}

func isBrowseNavigationKey(key string) bool {
	switch key {
	case "k", "up", "j", "down", "g", "home", "G", "end", "pgup", "pgdown":
		return true
	}
	return false
}

// browsePageSize is the number of files visible in the browser at once.
func (m *model) browsePageSize() int {
	return max(m.layout.ScreenHeight-4, 1)
}
