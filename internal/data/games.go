package data

// MainSeriesGames is the fixed list of known game editions users can mark
// a Pokemon as caught in. It lives in code only.
var MainSeriesGames = []Game{
	{ID: "red", Name: "Pokemon Red", Generation: 1, Year: 1996, Platform: "Game Boy"},
	{ID: "blue", Name: "Pokemon Blue", Generation: 1, Year: 1996, Platform: "Game Boy"},
	{ID: "green", Name: "Pokemon Green", Generation: 1, Year: 1996, Platform: "Game Boy"},
	{ID: "yellow", Name: "Pokemon Yellow", Generation: 1, Year: 1998, Platform: "Game Boy"},

	{ID: "gold", Name: "Pokemon Gold", Generation: 2, Year: 1999, Platform: "Game Boy Color"},
	{ID: "silver", Name: "Pokemon Silver", Generation: 2, Year: 1999, Platform: "Game Boy Color"},
	{ID: "crystal", Name: "Pokemon Crystal", Generation: 2, Year: 2000, Platform: "Game Boy Color"},

	{ID: "ruby", Name: "Pokemon Ruby", Generation: 3, Year: 2002, Platform: "Game Boy Advance"},
	{ID: "sapphire", Name: "Pokemon Sapphire", Generation: 3, Year: 2002, Platform: "Game Boy Advance"},
	{ID: "emerald", Name: "Pokemon Emerald", Generation: 3, Year: 2004, Platform: "Game Boy Advance"},
	{ID: "firered", Name: "Pokemon FireRed", Generation: 3, Year: 2004, Platform: "Game Boy Advance"},
	{ID: "leafgreen", Name: "Pokemon LeafGreen", Generation: 3, Year: 2004, Platform: "Game Boy Advance"},

	{ID: "diamond", Name: "Pokemon Diamond", Generation: 4, Year: 2006, Platform: "Nintendo DS"},
	{ID: "pearl", Name: "Pokemon Pearl", Generation: 4, Year: 2006, Platform: "Nintendo DS"},
	{ID: "platinum", Name: "Pokemon Platinum", Generation: 4, Year: 2008, Platform: "Nintendo DS"},
	{ID: "heartgold", Name: "Pokemon HeartGold", Generation: 4, Year: 2009, Platform: "Nintendo DS"},
	{ID: "soulsilver", Name: "Pokemon SoulSilver", Generation: 4, Year: 2009, Platform: "Nintendo DS"},

	{ID: "black", Name: "Pokemon Black", Generation: 5, Year: 2010, Platform: "Nintendo DS"},
	{ID: "white", Name: "Pokemon White", Generation: 5, Year: 2010, Platform: "Nintendo DS"},
	{ID: "black2", Name: "Pokemon Black 2", Generation: 5, Year: 2012, Platform: "Nintendo DS"},
	{ID: "white2", Name: "Pokemon White 2", Generation: 5, Year: 2012, Platform: "Nintendo DS"},

	{ID: "x", Name: "Pokemon X", Generation: 6, Year: 2013, Platform: "Nintendo 3DS"},
	{ID: "y", Name: "Pokemon Y", Generation: 6, Year: 2013, Platform: "Nintendo 3DS"},
	{ID: "omegaruby", Name: "Pokemon Omega Ruby", Generation: 6, Year: 2014, Platform: "Nintendo 3DS"},
	{ID: "alphasapphire", Name: "Pokemon Alpha Sapphire", Generation: 6, Year: 2014, Platform: "Nintendo 3DS"},

	{ID: "sun", Name: "Pokemon Sun", Generation: 7, Year: 2016, Platform: "Nintendo 3DS"},
	{ID: "moon", Name: "Pokemon Moon", Generation: 7, Year: 2016, Platform: "Nintendo 3DS"},
	{ID: "ultrasun", Name: "Pokemon Ultra Sun", Generation: 7, Year: 2017, Platform: "Nintendo 3DS"},
	{ID: "ultramoon", Name: "Pokemon Ultra Moon", Generation: 7, Year: 2017, Platform: "Nintendo 3DS"},
	{ID: "letsgopikachu", Name: "Pokemon: Let's Go, Pikachu!", Generation: 7, Year: 2018, Platform: "Nintendo Switch"},
	{ID: "letsgoeevee", Name: "Pokemon: Let's Go, Eevee!", Generation: 7, Year: 2018, Platform: "Nintendo Switch"},

	{ID: "sword", Name: "Pokemon Sword", Generation: 8, Year: 2019, Platform: "Nintendo Switch"},
	{ID: "shield", Name: "Pokemon Shield", Generation: 8, Year: 2019, Platform: "Nintendo Switch"},
	{ID: "brilliantdiamond", Name: "Pokemon Brilliant Diamond", Generation: 8, Year: 2021, Platform: "Nintendo Switch"},
	{ID: "shiningpearl", Name: "Pokemon Shining Pearl", Generation: 8, Year: 2021, Platform: "Nintendo Switch"},
	{ID: "legendsarceus", Name: "Pokemon Legends: Arceus", Generation: 8, Year: 2022, Platform: "Nintendo Switch"},

	{ID: "scarlet", Name: "Pokemon Scarlet", Generation: 9, Year: 2022, Platform: "Nintendo Switch"},
	{ID: "violet", Name: "Pokemon Violet", Generation: 9, Year: 2022, Platform: "Nintendo Switch"},
}
