package game

// antonymPairs is the fixed table the round axis is drawn from. The pair
// describes the two ends of the wheel for the guessing team.
var antonymPairs = [][2]string{
	{"Hot", "Cold"},
	{"Fast", "Slow"},
	{"Big", "Small"},
	{"Light", "Dark"},
	{"Tall", "Short"},
	{"Wide", "Narrow"},
	{"Long", "Brief"},
	{"Heavy", "Weightless"},
	{"Strong", "Weak"},
	{"Soft", "Hard"},
	{"New", "Old"},
	{"Rich", "Poor"},
	{"Smart", "Silly"},
	{"Kind", "Evil"},
	{"Happy", "Sad"},
}
