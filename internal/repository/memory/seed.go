package memory

const (
	genreAction     = 28
	genreAdventure  = 12
	genreCrime      = 80
	genreDrama      = 18
	genreMystery    = 9648
	genreScienceFic = 878
	genreThriller   = 53
	genreComedy     = 35
)

var genreNames = map[int]string{
	genreAction:     "Action",
	genreAdventure:  "Adventure",
	genreCrime:      "Crime",
	genreDrama:      "Drama",
	genreMystery:    "Mystery",
	genreScienceFic: "Science Fiction",
	genreThriller:   "Thriller",
	genreComedy:     "Comedy",
}

type person struct {
	id         int64
	name       string
	department string
	profile    string
	popularity float64
}

type credit struct {
	personID int64
	// part is the character for cast and the job for crew.
	part string
}

type movie struct {
	id          int64
	title       string
	overview    string
	releaseDate string
	rating      float64
	popularity  float64
	runtime     int
	poster      string
	backdrop    string
	trailer     string
	genres      []int
	cast        []credit
	crew        []credit
}

var seedPeople = []person{
	{id: 6193, name: "Leonardo DiCaprio", department: "Acting", profile: "/wo2hJpn04vbtmh0B9utCFdsQhxM.jpg", popularity: 48.2},
	{id: 525, name: "Christopher Nolan", department: "Directing", profile: "/xuAIuYSmsUzKlUMBFGVZaWsY3DZ.jpg", popularity: 21.4},
	{id: 1032, name: "Martin Scorsese", department: "Directing", profile: "/9U9Y5GQuWX3EZy39B8nkk4NY01S.jpg", popularity: 15.9},
	{id: 103, name: "Mark Ruffalo", department: "Acting", profile: "/1RJxa4f5xKNy5MDcj9YVRaYFAd.jpg", popularity: 30.1},
	{id: 1136406, name: "Tom Holland", department: "Acting", profile: "/bBRlrpJm9XkNSg0YT5LCaxqoFMX.jpg", popularity: 62.7},
	{id: 505710, name: "Zendaya", department: "Acting", profile: "/3WdOloHpjtjL96uVOhFRRCcYSwq.jpg", popularity: 55.3},
	{id: 3894, name: "Christian Bale", department: "Acting", profile: "/7Pxez9J8fuPd2Mn9kex13YALrCQ.jpg", popularity: 33.8},
	{id: 6968, name: "Hugh Jackman", department: "Acting", profile: "/4Xujtewxqt6aU0Y81tsS9gkjizk.jpg", popularity: 40.5},
	{id: 529, name: "Guy Pearce", department: "Acting", profile: "/vTqk6Nh3WgqPubkS23eOlMAwmwa.jpg", popularity: 18.6},
	{id: 10297, name: "Matthew McConaughey", department: "Acting", profile: "/sY2mwpafcwqyYS1sOySu1MENDse.jpg", popularity: 27.3},
	{id: 1190668, name: "Timothée Chalamet", department: "Acting", profile: "/BE2sdjpgsa2rNTFa66f7upkaOP.jpg", popularity: 58.9},
	{id: 137427, name: "Denis Villeneuve", department: "Directing", profile: "/zdDx9Xs93UIrJFWYApYR28J8M6b.jpg", popularity: 12.2},
	{id: 6384, name: "Keanu Reeves", department: "Acting", profile: "/4D0PpNI0kmP58hgrwGC3wCjxhnm.jpg", popularity: 44.0},
	{id: 9340, name: "Lana Wachowski", department: "Directing", profile: "/8jS4y6ZuFBaR4QR6Ff8O9RGxMrj.jpg", popularity: 6.1},
	{id: 287, name: "Brad Pitt", department: "Acting", profile: "/cckcYc2v0yh1tc9QjRelptcOBko.jpg", popularity: 46.7},
	{id: 819, name: "Edward Norton", department: "Acting", profile: "/8nytsqL59SFJTVYVrN72k6qkGgJ.jpg", popularity: 20.4},
	{id: 7467, name: "David Fincher", department: "Directing", profile: "/tpEczFclQZeKAiCeKZZ0adRvtfz.jpg", popularity: 9.8},
	{id: 21684, name: "Bong Joon-ho", department: "Directing", profile: "/t4NFLDOAjCvkTP3ZF2SwIBk6hYG.jpg", popularity: 8.3},
	{id: 20738, name: "Song Kang-ho", department: "Acting", profile: "/zYxc3sXWuOCB4lEEN05mWu7CBwT.jpg", popularity: 11.5},
	{id: 9273, name: "Amy Adams", department: "Acting", profile: "/oVDB3kzZO4jdr7idWqPLrqaW7Kb.jpg", popularity: 24.8},
}

var seedMovies = []movie{
	{
		id:          27205,
		title:       "Inception",
		overview:    "Cobb, a skilled thief who steals secrets from deep within the subconscious during the dream state, is offered a chance at redemption: plant an idea instead of stealing one.",
		releaseDate: "2010-07-15",
		rating:      8.4,
		popularity:  92.1,
		runtime:     148,
		poster:      "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg",
		backdrop:    "/8ZTVqvKDQ8emSGUEMjsS4yHAwrp.jpg",
		trailer:     "YoHD9XEInc0",
		genres:      []int{genreAction, genreScienceFic, genreAdventure},
		cast:        []credit{{6193, "Dom Cobb"}},
		crew:        []credit{{525, "Director"}},
	},
	{
		id:          11324,
		title:       "Shutter Island",
		overview:    "World War II soldier-turned-U.S. Marshal Teddy Daniels investigates the disappearance of a patient from a hospital for the criminally insane, but his efforts are compromised by troubling visions and a mysterious doctor.",
		releaseDate: "2010-02-14",
		rating:      8.2,
		popularity:  61.4,
		runtime:     138,
		poster:      "/4GDy0PHYX3VRXUtwK5ysFbg3kEx.jpg",
		backdrop:    "/5NG8qbigQmat187K5RScFOYu8I.jpg",
		trailer:     "5iaYLCiq5RM",
		genres:      []int{genreDrama, genreThriller, genreMystery},
		cast:        []credit{{6193, "Teddy Daniels"}, {103, "Chuck Aule"}},
		crew:        []credit{{1032, "Director"}},
	},
	{
		id:          77,
		title:       "Memento",
		overview:    "A man with short-term memory loss attempts to track down his wife's murderer using notes and tattoos.",
		releaseDate: "2000-10-11",
		rating:      8.2,
		popularity:  30.7,
		runtime:     113,
		poster:      "/yuNs09hvpHVU1cBTCAk9zxsL2oW.jpg",
		backdrop:    "/gCBmXiNKLu6v3vQz9JrHIvPJmKl.jpg",
		genres:      []int{genreMystery, genreThriller},
		cast:        []credit{{529, "Leonard Shelby"}},
		crew:        []credit{{525, "Director"}},
	},
	{
		id:          1124,
		title:       "The Prestige",
		overview:    "Two rival magicians engage in a dangerous game of one-upmanship, with devastating consequences.",
		releaseDate: "2006-10-17",
		rating:      8.2,
		popularity:  40.2,
		runtime:     130,
		poster:      "/tRNlZbgNCNOpLpbPEz5L8G8A0JN.jpg",
		backdrop:    "/nnQ6bQr6Z1nQdJc2KYsJQZkIR.jpg",
		genres:      []int{genreDrama, genreMystery, genreScienceFic},
		cast:        []credit{{6968, "Robert Angier"}, {3894, "Alfred Borden"}},
		crew:        []credit{{525, "Director"}},
	},
	{
		id:          157336,
		title:       "Interstellar",
		overview:    "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer the vast distances involved in an interstellar voyage.",
		releaseDate: "2014-11-05",
		rating:      8.4,
		popularity:  88.5,
		runtime:     169,
		poster:      "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		backdrop:    "/xJHokMbljvjADYdit5fK5VQsXEG.jpg",
		trailer:     "zSWdZVtXT7E",
		genres:      []int{genreAdventure, genreDrama, genreScienceFic},
		cast:        []credit{{10297, "Cooper"}, {9273, "Brand's colleague"}},
		crew:        []credit{{525, "Director"}},
	},
	{
		id:          155,
		title:       "The Dark Knight",
		overview:    "Batman raises the stakes in his war on crime and faces the Joker, a criminal mastermind who wants to plunge Gotham into anarchy.",
		releaseDate: "2008-07-16",
		rating:      8.5,
		popularity:  85.0,
		runtime:     152,
		poster:      "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		backdrop:    "/nMKdUUepR0i5zn0y1T4CsSB5chy.jpg",
		trailer:     "EXeTwQWrcwY",
		genres:      []int{genreDrama, genreAction, genreCrime, genreThriller},
		cast:        []credit{{3894, "Bruce Wayne"}},
		crew:        []credit{{525, "Director"}},
	},
	{
		id:          550,
		title:       "Fight Club",
		overview:    "A ticking-time-bomb insomniac and a slippery soap salesman channel primal male aggression into a shocking new form of therapy.",
		releaseDate: "1999-10-15",
		rating:      8.4,
		popularity:  73.4,
		runtime:     139,
		poster:      "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
		backdrop:    "/hZkgoQYus5vegHoetLkCJzb17zJ.jpg",
		genres:      []int{genreDrama, genreThriller},
		cast:        []credit{{287, "Tyler Durden"}, {819, "The Narrator"}},
		crew:        []credit{{7467, "Director"}},
	},
	{
		id:          603,
		title:       "The Matrix",
		overview:    "A computer hacker learns that the world he lives in is a simulated reality and joins a rebellion against the machines that control it.",
		releaseDate: "1999-03-31",
		rating:      8.2,
		popularity:  70.8,
		runtime:     136,
		poster:      "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
		backdrop:    "/ncEsesgOJDNrTUED89hYbA117wo.jpg",
		genres:      []int{genreAction, genreScienceFic},
		cast:        []credit{{6384, "Neo"}},
		crew:        []credit{{9340, "Director"}},
	},
	{
		id:          496243,
		title:       "Parasite",
		overview:    "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood until they get entangled in an unexpected incident.",
		releaseDate: "2019-05-30",
		rating:      8.5,
		popularity:  55.6,
		runtime:     133,
		poster:      "/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
		backdrop:    "/TU9NIjwzjoKPwQHoHshkFcQUCG.jpg",
		genres:      []int{genreComedy, genreThriller, genreDrama},
		cast:        []credit{{20738, "Kim Ki-taek"}},
		crew:        []credit{{21684, "Director"}},
	},
	{
		id:          329865,
		title:       "Arrival",
		overview:    "A linguist works with the military to communicate with alien lifeforms after twelve mysterious spacecraft appear around the world.",
		releaseDate: "2016-11-10",
		rating:      7.6,
		popularity:  38.9,
		runtime:     116,
		poster:      "/x2FJsf1ElAgr63Y3PNPtJrcmpoe.jpg",
		backdrop:    "/yIZ1xendyqKvY3FGeeUYUd5X9Mm.jpg",
		genres:      []int{genreDrama, genreScienceFic, genreMystery},
		cast:        []credit{{9273, "Louise Banks"}},
		crew:        []credit{{137427, "Director"}},
	},
	{
		id:          693134,
		title:       "Dune: Part Two",
		overview:    "Paul Atreides unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family.",
		releaseDate: "2024-02-27",
		rating:      8.2,
		popularity:  96.3,
		runtime:     167,
		poster:      "/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
		backdrop:    "/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
		trailer:     "Way9Dexny3w",
		genres:      []int{genreScienceFic, genreAdventure},
		cast:        []credit{{1190668, "Paul Atreides"}, {505710, "Chani"}},
		crew:        []credit{{137427, "Director"}},
	},
	{
		id:          634649,
		title:       "Spider-Man: No Way Home",
		overview:    "Peter Parker is unmasked and no longer able to separate his normal life from the high-stakes of being a super-hero. When he asks for help from Doctor Strange the stakes become even more dangerous.",
		releaseDate: "2021-12-15",
		rating:      7.9,
		popularity:  90.2,
		runtime:     148,
		poster:      "/1g0dhYtq4irTY1GPXvft6k4YLjm.jpg",
		backdrop:    "/14QbnygCuTO0vl7CAFmPf1fgZfV.jpg",
		genres:      []int{genreAction, genreAdventure, genreScienceFic},
		cast:        []credit{{1136406, "Peter Parker"}, {505710, "MJ"}},
	},
	{
		id:          1003596,
		title:       "Avengers: Doomsday",
		overview:    "The Avengers face their most formidable threat yet as Victor von Doom sets his sights on the multiverse.",
		releaseDate: "2026-12-16",
		popularity:  81.7,
		genres:      []int{genreAction, genreAdventure, genreScienceFic},
		cast:        []credit{{1136406, "Peter Parker"}},
	},
	{
		id:          1170608,
		title:       "Dune: Part Three",
		overview:    "Paul Atreides, now emperor, struggles with the consequences of the holy war waged in his name.",
		releaseDate: "2026-12-16",
		popularity:  64.0,
		genres:      []int{genreScienceFic, genreAdventure, genreDrama},
		cast:        []credit{{1190668, "Paul Atreides"}, {505710, "Chani"}},
		crew:        []credit{{137427, "Director"}},
	},
}
