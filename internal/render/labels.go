package render

// labels holds the prefix printed in front of each value.
type labels struct {
	up, down  string
	mem, swap string
	cpu       string
}

var textLabels = labels{
	up:   "UP: ",
	down: "DOWN: ",
	mem:  "MEM: ",
	swap: "SWP: ",
	cpu:  "CPU: ",
}

// Nerd Font glyphs.
var iconLabels = labels{
	up:   "\uf062 ",
	down: "\uf063 ",
	mem:  "\uf85a ",
	swap: "\uf9e0 ",
	cpu:  "\uf2db ",
}

func labelsFor(icons bool) labels {
	if icons {
		return iconLabels
	}
	return textLabels
}
