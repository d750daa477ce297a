package theme

// Default returns the built-in theme.
func Default() *Theme {
	return New(map[string]map[string]string{
		"colors": {
			"inherit":     "inherit",
			"current":     "currentColor",
			"transparent": "transparent",
			"black":       "#000",
			"white":       "#fff",
			"red-100":     "#fee2e2",
			"red-300":     "#fca5a5",
			"red-500":     "#f00",
			"red-700":     "#b91c1c",
			"red-900":     "#7f1d1d",
			"green-500":   "#22c55e",
			"blue-100":    "#dbeafe",
			"blue-500":    "#3b82f6",
			"blue-700":    "#1d4ed8",
			"gray-100":    "#f3f4f6",
			"gray-500":    "#6b7280",
			"gray-900":    "#111827",
		},
		"spacing": {
			"px": "1px",
		},
		"breakpoints": {
			"sm":  "640px",
			"md":  "768px",
			"lg":  "1024px",
			"xl":  "1280px",
			"2xl": "1536px",
		},
		"containers": {
			"xs": "20rem",
			"sm": "24rem",
			"md": "28rem",
			"lg": "32rem",
			"xl": "36rem",
		},
		"radius": {
			"DEFAULT": "0.25rem",
			"none":    "0",
			"sm":      "0.125rem",
			"md":      "0.375rem",
			"lg":      "0.5rem",
			"xl":      "0.75rem",
			"full":    "9999px",
		},
		"font-weight": {
			"thin":     "100",
			"light":    "300",
			"normal":   "400",
			"medium":   "500",
			"semibold": "600",
			"bold":     "700",
			"black":    "900",
		},
		"font-size": {
			"xs":   "0.75rem",
			"sm":   "0.875rem",
			"base": "1rem",
			"lg":   "1.125rem",
			"xl":   "1.25rem",
			"2xl":  "1.5rem",
		},
	}, map[string]any{
		"dark_mode": "media",
		"important": false,
	})
}
