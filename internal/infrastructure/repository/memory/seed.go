package memory

import (
	"github.com/riskibarqy/statsapi-gateway/internal/domain/player"
	"github.com/riskibarqy/statsapi-gateway/internal/domain/team"
)

// SeedTeams returns every MLB club with its aliases, ordered by stats API id.
func SeedTeams() []TeamSeed {
	return []TeamSeed{
		{Team: team.Team{ID: 108, Name: "Los Angeles Angels", Abbreviation: "LAA"}, Aliases: []string{"los angeles angels", "angels", "la angels", "anaheim angels", "laa", "halos"}},
		{Team: team.Team{ID: 109, Name: "Arizona Diamondbacks", Abbreviation: "ARI"}, Aliases: []string{"arizona diamondbacks", "diamondbacks", "d-backs", "dbacks", "arizona", "ari", "az"}},
		{Team: team.Team{ID: 110, Name: "Baltimore Orioles", Abbreviation: "BAL"}, Aliases: []string{"baltimore orioles", "orioles", "o's", "baltimore", "bal"}},
		{Team: team.Team{ID: 111, Name: "Boston Red Sox", Abbreviation: "BOS"}, Aliases: []string{"boston red sox", "red sox", "boston", "bos"}},
		{Team: team.Team{ID: 112, Name: "Chicago Cubs", Abbreviation: "CHC"}, Aliases: []string{"chicago cubs", "cubs", "cubbies", "chc"}},
		{Team: team.Team{ID: 113, Name: "Cincinnati Reds", Abbreviation: "CIN"}, Aliases: []string{"cincinnati reds", "reds", "cincinnati", "cin"}},
		{Team: team.Team{ID: 114, Name: "Cleveland Guardians", Abbreviation: "CLE"}, Aliases: []string{"cleveland guardians", "guardians", "cleveland", "cle"}},
		{Team: team.Team{ID: 115, Name: "Colorado Rockies", Abbreviation: "COL"}, Aliases: []string{"colorado rockies", "rockies", "colorado", "col"}},
		{Team: team.Team{ID: 116, Name: "Detroit Tigers", Abbreviation: "DET"}, Aliases: []string{"detroit tigers", "tigers", "detroit", "det"}},
		{Team: team.Team{ID: 117, Name: "Houston Astros", Abbreviation: "HOU"}, Aliases: []string{"houston astros", "astros", "stros", "houston", "hou"}},
		{Team: team.Team{ID: 118, Name: "Kansas City Royals", Abbreviation: "KC"}, Aliases: []string{"kansas city royals", "royals", "kansas city", "kc", "kcr"}},
		{Team: team.Team{ID: 119, Name: "Los Angeles Dodgers", Abbreviation: "LAD"}, Aliases: []string{"los angeles dodgers", "dodgers", "la dodgers", "lad"}},
		{Team: team.Team{ID: 120, Name: "Washington Nationals", Abbreviation: "WSH"}, Aliases: []string{"washington nationals", "nationals", "nats", "washington", "wsh", "was"}},
		{Team: team.Team{ID: 121, Name: "New York Mets", Abbreviation: "NYM"}, Aliases: []string{"new york mets", "mets", "ny mets", "nym"}},
		{Team: team.Team{ID: 133, Name: "Athletics", Abbreviation: "ATH"}, Aliases: []string{"athletics", "oakland athletics", "a's", "oakland", "ath", "oak"}},
		{Team: team.Team{ID: 134, Name: "Pittsburgh Pirates", Abbreviation: "PIT"}, Aliases: []string{"pittsburgh pirates", "pirates", "bucs", "pittsburgh", "pit"}},
		{Team: team.Team{ID: 135, Name: "San Diego Padres", Abbreviation: "SD"}, Aliases: []string{"san diego padres", "padres", "friars", "san diego", "sd", "sdp"}},
		{Team: team.Team{ID: 136, Name: "Seattle Mariners", Abbreviation: "SEA"}, Aliases: []string{"seattle mariners", "mariners", "m's", "seattle", "sea"}},
		{Team: team.Team{ID: 137, Name: "San Francisco Giants", Abbreviation: "SF"}, Aliases: []string{"san francisco giants", "giants", "san francisco", "sf", "sfg"}},
		{Team: team.Team{ID: 138, Name: "St. Louis Cardinals", Abbreviation: "STL"}, Aliases: []string{"st. louis cardinals", "st louis cardinals", "cardinals", "cards", "st. louis", "st louis", "stl"}},
		{Team: team.Team{ID: 139, Name: "Tampa Bay Rays", Abbreviation: "TB"}, Aliases: []string{"tampa bay rays", "rays", "tampa bay", "tampa", "tb", "tbr"}},
		{Team: team.Team{ID: 140, Name: "Texas Rangers", Abbreviation: "TEX"}, Aliases: []string{"texas rangers", "rangers", "texas", "tex"}},
		{Team: team.Team{ID: 141, Name: "Toronto Blue Jays", Abbreviation: "TOR"}, Aliases: []string{"toronto blue jays", "blue jays", "jays", "toronto", "tor"}},
		{Team: team.Team{ID: 142, Name: "Minnesota Twins", Abbreviation: "MIN"}, Aliases: []string{"minnesota twins", "twins", "minnesota", "min"}},
		{Team: team.Team{ID: 143, Name: "Philadelphia Phillies", Abbreviation: "PHI"}, Aliases: []string{"philadelphia phillies", "phillies", "phils", "philadelphia", "phi"}},
		{Team: team.Team{ID: 144, Name: "Atlanta Braves", Abbreviation: "ATL"}, Aliases: []string{"atlanta braves", "braves", "atlanta", "atl"}},
		{Team: team.Team{ID: 145, Name: "Chicago White Sox", Abbreviation: "CWS"}, Aliases: []string{"chicago white sox", "white sox", "cws", "chw"}},
		{Team: team.Team{ID: 146, Name: "Miami Marlins", Abbreviation: "MIA"}, Aliases: []string{"miami marlins", "marlins", "miami", "mia"}},
		{Team: team.Team{ID: 147, Name: "New York Yankees", Abbreviation: "NYY"}, Aliases: []string{"new york yankees", "yankees", "ny yankees", "yanks", "bronx bombers", "nyy"}},
		{Team: team.Team{ID: 158, Name: "Milwaukee Brewers", Abbreviation: "MIL"}, Aliases: []string{"milwaukee brewers", "brewers", "brew crew", "milwaukee", "mil"}},
	}
}

// SeedPlayers returns the curated player dictionary.
func SeedPlayers() []PlayerSeed {
	return []PlayerSeed{
		{Player: player.Player{ID: 592450, Name: "Aaron Judge", Team: "NYY"}, Aliases: []string{"aaron judge", "judge"}},
		{Player: player.Player{ID: 660271, Name: "Shohei Ohtani", Team: "LAD"}, Aliases: []string{"shohei ohtani", "ohtani", "shotime"}},
		{Player: player.Player{ID: 605141, Name: "Mookie Betts", Team: "LAD"}, Aliases: []string{"mookie betts", "mookie", "betts"}},
		{Player: player.Player{ID: 545361, Name: "Mike Trout", Team: "LAA"}, Aliases: []string{"mike trout", "trout"}},
		{Player: player.Player{ID: 665742, Name: "Juan Soto", Team: "NYM"}, Aliases: []string{"juan soto", "soto"}},
		{Player: player.Player{ID: 518692, Name: "Freddie Freeman", Team: "LAD"}, Aliases: []string{"freddie freeman", "freeman"}},
		{Player: player.Player{ID: 547180, Name: "Bryce Harper", Team: "PHI"}, Aliases: []string{"bryce harper", "harper"}},
		{Player: player.Player{ID: 660670, Name: "Ronald Acuña Jr.", Team: "ATL"}, Aliases: []string{"ronald acuña jr.", "ronald acuna jr.", "ronald acuna jr", "ronald acuna", "acuña", "acuna"}},
		{Player: player.Player{ID: 665487, Name: "Fernando Tatis Jr.", Team: "SD"}, Aliases: []string{"fernando tatis jr.", "fernando tatis jr", "fernando tatis", "tatis"}},
		{Player: player.Player{ID: 665489, Name: "Vladimir Guerrero Jr.", Team: "TOR"}, Aliases: []string{"vladimir guerrero jr.", "vladimir guerrero jr", "vladimir guerrero", "vlad jr", "vladdy"}},
		{Player: player.Player{ID: 543037, Name: "Gerrit Cole", Team: "NYY"}, Aliases: []string{"gerrit cole", "cole"}},
		{Player: player.Player{ID: 477132, Name: "Clayton Kershaw", Team: "LAD"}, Aliases: []string{"clayton kershaw", "kershaw"}},
		{Player: player.Player{ID: 694973, Name: "Paul Skenes", Team: "PIT"}, Aliases: []string{"paul skenes", "skenes"}},
		{Player: player.Player{ID: 677951, Name: "Bobby Witt Jr.", Team: "KC"}, Aliases: []string{"bobby witt jr.", "bobby witt jr", "bobby witt", "witt"}},
		{Player: player.Player{ID: 608369, Name: "Corey Seager", Team: "TEX"}, Aliases: []string{"corey seager", "seager"}},
		{Player: player.Player{ID: 670541, Name: "Yordan Alvarez", Team: "HOU"}, Aliases: []string{"yordan alvarez", "yordan", "alvarez"}},
		{Player: player.Player{ID: 514888, Name: "Jose Altuve", Team: "HOU"}, Aliases: []string{"jose altuve", "altuve"}},
		{Player: player.Player{ID: 677594, Name: "Julio Rodríguez", Team: "SEA"}, Aliases: []string{"julio rodríguez", "julio rodriguez", "j-rod", "jrod"}},
		{Player: player.Player{ID: 682829, Name: "Elly De La Cruz", Team: "CIN"}, Aliases: []string{"elly de la cruz", "de la cruz", "elly"}},
		{Player: player.Player{ID: 624413, Name: "Pete Alonso", Team: "NYM"}, Aliases: []string{"pete alonso", "alonso", "polar bear"}},
		{Player: player.Player{ID: 594798, Name: "Jacob deGrom", Team: "TEX"}, Aliases: []string{"jacob degrom", "degrom"}},
		{Player: player.Player{ID: 646240, Name: "Rafael Devers", Team: "SF"}, Aliases: []string{"rafael devers", "devers"}},
	}
}
