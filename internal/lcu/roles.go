package lcu

import "strings"

// NormalizeRole maps the LCU timeline role/lane pair to the notebook's
// role names: top, jungle, mid, adc, support.
func NormalizeRole(role, lane string) string {
	switch strings.ToUpper(lane) {
	case "TOP":
		return "top"
	case "JUNGLE":
		return "jungle"
	case "MIDDLE", "MID":
		return "mid"
	case "BOTTOM", "BOT":
		upper := strings.ToUpper(role)
		if upper == "CARRY" || upper == "DUO_CARRY" {
			return "adc"
		}
		return "support"
	default:
		return strings.ToLower(lane)
	}
}
