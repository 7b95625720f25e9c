package sim

// --- Team roster ---

// Conference is the league half a team plays in.
type Conference string

const (
	ConferenceAFC Conference = "AFC"
	ConferenceNFC Conference = "NFC"
)

// Division groups four teams inside a conference.
type Division string

const (
	DivisionEast  Division = "East"
	DivisionNorth Division = "North"
	DivisionSouth Division = "South"
	DivisionWest  Division = "West"
)

// Team is an aircraft skin. Colours are "#RRGGBB".
type Team struct {
	ID           string
	City         string
	Name         string
	Abbreviation string
	Primary      string
	Secondary    string
	Conference   Conference
	Division     Division
}

// FullName is "City Name", e.g. "Green Bay Packers".
func (t Team) FullName() string {
	if t.City == "" {
		return t.Name
	}
	return t.City + " " + t.Name
}

// DefaultTeam is shown whenever a team id does not resolve.
var DefaultTeam = Team{
	ID:           "",
	Name:         "Fighter Squadron",
	Abbreviation: "NFL",
	Primary:      "#FF0000",
	Secondary:    "#FFFFFF",
}

// Roster lists every selectable team in league order.
var Roster = []Team{
	{ID: "bills", City: "Buffalo", Name: "Bills", Abbreviation: "BUF", Primary: "#00338D", Secondary: "#C60C30", Conference: ConferenceAFC, Division: DivisionEast},
	{ID: "dolphins", City: "Miami", Name: "Dolphins", Abbreviation: "MIA", Primary: "#008E97", Secondary: "#FC4C02", Conference: ConferenceAFC, Division: DivisionEast},
	{ID: "patriots", City: "New England", Name: "Patriots", Abbreviation: "NE", Primary: "#002244", Secondary: "#C60C30", Conference: ConferenceAFC, Division: DivisionEast},
	{ID: "jets", City: "New York", Name: "Jets", Abbreviation: "NYJ", Primary: "#125740", Secondary: "#FFFFFF", Conference: ConferenceAFC, Division: DivisionEast},
	{ID: "ravens", City: "Baltimore", Name: "Ravens", Abbreviation: "BAL", Primary: "#241773", Secondary: "#9E7C0C", Conference: ConferenceAFC, Division: DivisionNorth},
	{ID: "bengals", City: "Cincinnati", Name: "Bengals", Abbreviation: "CIN", Primary: "#FB4F14", Secondary: "#000000", Conference: ConferenceAFC, Division: DivisionNorth},
	{ID: "browns", City: "Cleveland", Name: "Browns", Abbreviation: "CLE", Primary: "#FF3C00", Secondary: "#362D00", Conference: ConferenceAFC, Division: DivisionNorth},
	{ID: "steelers", City: "Pittsburgh", Name: "Steelers", Abbreviation: "PIT", Primary: "#FFB612", Secondary: "#101820", Conference: ConferenceAFC, Division: DivisionNorth},
	{ID: "texans", City: "Houston", Name: "Texans", Abbreviation: "HOU", Primary: "#03202F", Secondary: "#A71930", Conference: ConferenceAFC, Division: DivisionSouth},
	{ID: "colts", City: "Indianapolis", Name: "Colts", Abbreviation: "IND", Primary: "#002C5F", Secondary: "#A2AAAD", Conference: ConferenceAFC, Division: DivisionSouth},
	{ID: "jaguars", City: "Jacksonville", Name: "Jaguars", Abbreviation: "JAX", Primary: "#101820", Secondary: "#D7A22A", Conference: ConferenceAFC, Division: DivisionSouth},
	{ID: "titans", City: "Tennessee", Name: "Titans", Abbreviation: "TEN", Primary: "#0C2340", Secondary: "#4B92DB", Conference: ConferenceAFC, Division: DivisionSouth},
	{ID: "broncos", City: "Denver", Name: "Broncos", Abbreviation: "DEN", Primary: "#FB4F14", Secondary: "#002244", Conference: ConferenceAFC, Division: DivisionWest},
	{ID: "chiefs", City: "Kansas City", Name: "Chiefs", Abbreviation: "KC", Primary: "#E31837", Secondary: "#FFB81C", Conference: ConferenceAFC, Division: DivisionWest},
	{ID: "raiders", City: "Las Vegas", Name: "Raiders", Abbreviation: "LV", Primary: "#000000", Secondary: "#A5ACAF", Conference: ConferenceAFC, Division: DivisionWest},
	{ID: "chargers", City: "Los Angeles", Name: "Chargers", Abbreviation: "LAC", Primary: "#0080C6", Secondary: "#FFC20E", Conference: ConferenceAFC, Division: DivisionWest},
	{ID: "cowboys", City: "Dallas", Name: "Cowboys", Abbreviation: "DAL", Primary: "#003594", Secondary: "#869397", Conference: ConferenceNFC, Division: DivisionEast},
	{ID: "giants", City: "New York", Name: "Giants", Abbreviation: "NYG", Primary: "#0B2265", Secondary: "#A71930", Conference: ConferenceNFC, Division: DivisionEast},
	{ID: "eagles", City: "Philadelphia", Name: "Eagles", Abbreviation: "PHI", Primary: "#004C54", Secondary: "#A5ACAF", Conference: ConferenceNFC, Division: DivisionEast},
	{ID: "commanders", City: "Washington", Name: "Commanders", Abbreviation: "WAS", Primary: "#5A1414", Secondary: "#FFB612", Conference: ConferenceNFC, Division: DivisionEast},
	{ID: "bears", City: "Chicago", Name: "Bears", Abbreviation: "CHI", Primary: "#0B162A", Secondary: "#C83803", Conference: ConferenceNFC, Division: DivisionNorth},
	{ID: "lions", City: "Detroit", Name: "Lions", Abbreviation: "DET", Primary: "#0076B6", Secondary: "#B0B7BC", Conference: ConferenceNFC, Division: DivisionNorth},
	{ID: "packers", City: "Green Bay", Name: "Packers", Abbreviation: "GB", Primary: "#203731", Secondary: "#FFB612", Conference: ConferenceNFC, Division: DivisionNorth},
	{ID: "vikings", City: "Minnesota", Name: "Vikings", Abbreviation: "MIN", Primary: "#4F2683", Secondary: "#FFC62F", Conference: ConferenceNFC, Division: DivisionNorth},
	{ID: "falcons", City: "Atlanta", Name: "Falcons", Abbreviation: "ATL", Primary: "#A71930", Secondary: "#000000", Conference: ConferenceNFC, Division: DivisionSouth},
	{ID: "panthers", City: "Carolina", Name: "Panthers", Abbreviation: "CAR", Primary: "#0085CA", Secondary: "#101820", Conference: ConferenceNFC, Division: DivisionSouth},
	{ID: "saints", City: "New Orleans", Name: "Saints", Abbreviation: "NO", Primary: "#101820", Secondary: "#D3BC8D", Conference: ConferenceNFC, Division: DivisionSouth},
	{ID: "buccaneers", City: "Tampa Bay", Name: "Buccaneers", Abbreviation: "TB", Primary: "#D50A0A", Secondary: "#FF7900", Conference: ConferenceNFC, Division: DivisionSouth},
	{ID: "cardinals", City: "Arizona", Name: "Cardinals", Abbreviation: "ARI", Primary: "#97233F", Secondary: "#000000", Conference: ConferenceNFC, Division: DivisionWest},
	{ID: "rams", City: "Los Angeles", Name: "Rams", Abbreviation: "LAR", Primary: "#003594", Secondary: "#FFA300", Conference: ConferenceNFC, Division: DivisionWest},
	{ID: "49ers", City: "San Francisco", Name: "49ers", Abbreviation: "SF", Primary: "#AA0000", Secondary: "#B3995D", Conference: ConferenceNFC, Division: DivisionWest},
	{ID: "seahawks", City: "Seattle", Name: "Seahawks", Abbreviation: "SEA", Primary: "#002244", Secondary: "#69BE28", Conference: ConferenceNFC, Division: DivisionWest},
}

var rosterIndex = func() map[string]int {
	m := make(map[string]int, len(Roster))
	for i, t := range Roster {
		m[t.ID] = i
	}
	return m
}()

// LookupTeam resolves a team id. ok is false when the id is unknown; the
// returned team is then DefaultTeam so callers can always render something.
func LookupTeam(id string) (Team, bool) {
	i, ok := rosterIndex[id]
	if !ok {
		return DefaultTeam, false
	}
	return Roster[i], true
}

// TeamOrDefault is LookupTeam without the ok flag.
func TeamOrDefault(id string) Team {
	t, _ := LookupTeam(id)
	return t
}
