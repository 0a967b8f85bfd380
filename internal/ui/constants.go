// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the tab and the app frame.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 2

	// HeaderHeight is the header line plus its separator.
	HeaderHeight = 2

	// FooterHeight is the hint line at the bottom of the tab.
	FooterHeight = 1

	// TabOverhead is the vertical space the tab uses around its rows.
	TabOverhead = HeaderHeight + FooterHeight

	// StatusHeight is the app status line below the tab.
	StatusHeight = 1

	// ButtonWidth is the width of the action button column, including padding.
	ButtonWidth = 4

	// IndicatorWidth is the width of the playing/loading indicator column.
	IndicatorWidth = 3
)
