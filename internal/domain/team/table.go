package team

// infoByName is the fixed universe of FBS teams the service tracks. The
// downstream mobile client renders from the same table, so names here are
// authoritative for the whole product.
var infoByName = map[string]Info{
	// SEC
	"Alabama":           {Conference: "SEC", State: "AL", City: "Tuscaloosa", PrimaryColor: "9E1B32"},
	"Arkansas":          {Conference: "SEC", State: "AR", City: "Fayetteville", PrimaryColor: "9D2235"},
	"Auburn":            {Conference: "SEC", State: "AL", City: "Auburn", PrimaryColor: "0C2340"},
	"Florida":           {Conference: "SEC", State: "FL", City: "Gainesville", PrimaryColor: "0021A5"},
	"Georgia":           {Conference: "SEC", State: "GA", City: "Athens", PrimaryColor: "BA0C2F"},
	"Kentucky":          {Conference: "SEC", State: "KY", City: "Lexington", PrimaryColor: "0033A0"},
	"LSU":               {Conference: "SEC", State: "LA", City: "Baton Rouge", PrimaryColor: "461D7C"},
	"Mississippi State": {Conference: "SEC", State: "MS", City: "Starkville", PrimaryColor: "660000"},
	"Missouri":          {Conference: "SEC", State: "MO", City: "Columbia", PrimaryColor: "F1B82D"},
	"Oklahoma":          {Conference: "SEC", State: "OK", City: "Norman", PrimaryColor: "841617"},
	"Ole Miss":          {Conference: "SEC", State: "MS", City: "Oxford", PrimaryColor: "14213D"},
	"South Carolina":    {Conference: "SEC", State: "SC", City: "Columbia", PrimaryColor: "73000A"},
	"Tennessee":         {Conference: "SEC", State: "TN", City: "Knoxville", PrimaryColor: "FF8200"},
	"Texas":             {Conference: "SEC", State: "TX", City: "Austin", PrimaryColor: "BF5700"},
	"Texas A&M":         {Conference: "SEC", State: "TX", City: "College Station", PrimaryColor: "500000"},
	"Vanderbilt":        {Conference: "SEC", State: "TN", City: "Nashville", PrimaryColor: "866D4B"},

	// Big Ten
	"Illinois":       {Conference: "Big Ten", State: "IL", City: "Champaign", PrimaryColor: "E84A27"},
	"Indiana":        {Conference: "Big Ten", State: "IN", City: "Bloomington", PrimaryColor: "990000"},
	"Iowa":           {Conference: "Big Ten", State: "IA", City: "Iowa City", PrimaryColor: "FFCD00"},
	"Maryland":       {Conference: "Big Ten", State: "MD", City: "College Park", PrimaryColor: "E03A3E"},
	"Michigan":       {Conference: "Big Ten", State: "MI", City: "Ann Arbor", PrimaryColor: "00274C"},
	"Michigan State": {Conference: "Big Ten", State: "MI", City: "East Lansing", PrimaryColor: "18453B"},
	"Minnesota":      {Conference: "Big Ten", State: "MN", City: "Minneapolis", PrimaryColor: "7A0019"},
	"Nebraska":       {Conference: "Big Ten", State: "NE", City: "Lincoln", PrimaryColor: "E41C38"},
	"Northwestern":   {Conference: "Big Ten", State: "IL", City: "Evanston", PrimaryColor: "4E2A84"},
	"Ohio State":     {Conference: "Big Ten", State: "OH", City: "Columbus", PrimaryColor: "BB0000"},
	"Oregon":         {Conference: "Big Ten", State: "OR", City: "Eugene", PrimaryColor: "154733"},
	"Penn State":     {Conference: "Big Ten", State: "PA", City: "State College", PrimaryColor: "041E42"},
	"Purdue":         {Conference: "Big Ten", State: "IN", City: "West Lafayette", PrimaryColor: "CEB888"},
	"Rutgers":        {Conference: "Big Ten", State: "NJ", City: "Piscataway", PrimaryColor: "CC0033"},
	"UCLA":           {Conference: "Big Ten", State: "CA", City: "Los Angeles", PrimaryColor: "2D68C4"},
	"USC":            {Conference: "Big Ten", State: "CA", City: "Los Angeles", PrimaryColor: "990000"},
	"Washington":     {Conference: "Big Ten", State: "WA", City: "Seattle", PrimaryColor: "4B2E83"},
	"Wisconsin":      {Conference: "Big Ten", State: "WI", City: "Madison", PrimaryColor: "C5050C"},

	// Big 12
	"Arizona":        {Conference: "Big 12", State: "AZ", City: "Tucson", PrimaryColor: "CC0033"},
	"Arizona State":  {Conference: "Big 12", State: "AZ", City: "Tempe", PrimaryColor: "8C1D40"},
	"Baylor":         {Conference: "Big 12", State: "TX", City: "Waco", PrimaryColor: "154734"},
	"BYU":            {Conference: "Big 12", State: "UT", City: "Provo", PrimaryColor: "002E5D"},
	"Cincinnati":     {Conference: "Big 12", State: "OH", City: "Cincinnati", PrimaryColor: "E00122"},
	"Colorado":       {Conference: "Big 12", State: "CO", City: "Boulder", PrimaryColor: "CFB87C"},
	"Houston":        {Conference: "Big 12", State: "TX", City: "Houston", PrimaryColor: "C8102E"},
	"Iowa State":     {Conference: "Big 12", State: "IA", City: "Ames", PrimaryColor: "C8102E"},
	"Kansas":         {Conference: "Big 12", State: "KS", City: "Lawrence", PrimaryColor: "0051BA"},
	"Kansas State":   {Conference: "Big 12", State: "KS", City: "Manhattan", PrimaryColor: "512888"},
	"Oklahoma State": {Conference: "Big 12", State: "OK", City: "Stillwater", PrimaryColor: "FF7300"},
	"TCU":            {Conference: "Big 12", State: "TX", City: "Fort Worth", PrimaryColor: "4D1979"},
	"Texas Tech":     {Conference: "Big 12", State: "TX", City: "Lubbock", PrimaryColor: "CC0000"},
	"UCF":            {Conference: "Big 12", State: "FL", City: "Orlando", PrimaryColor: "BA9B37"},
	"Utah":           {Conference: "Big 12", State: "UT", City: "Salt Lake City", PrimaryColor: "CC0000"},
	"West Virginia":  {Conference: "Big 12", State: "WV", City: "Morgantown", PrimaryColor: "002855"},

	// ACC
	"Boston College": {Conference: "ACC", State: "MA", City: "Chestnut Hill", PrimaryColor: "98002E"},
	"California":     {Conference: "ACC", State: "CA", City: "Berkeley", PrimaryColor: "003262"},
	"Clemson":        {Conference: "ACC", State: "SC", City: "Clemson", PrimaryColor: "F56600"},
	"Duke":           {Conference: "ACC", State: "NC", City: "Durham", PrimaryColor: "003087"},
	"Florida State":  {Conference: "ACC", State: "FL", City: "Tallahassee", PrimaryColor: "782F40"},
	"Georgia Tech":   {Conference: "ACC", State: "GA", City: "Atlanta", PrimaryColor: "B3A369"},
	"Louisville":     {Conference: "ACC", State: "KY", City: "Louisville", PrimaryColor: "AD0000"},
	"Miami":          {Conference: "ACC", State: "FL", City: "Miami", PrimaryColor: "F47321"},
	"NC State":       {Conference: "ACC", State: "NC", City: "Raleigh", PrimaryColor: "CC0000"},
	"North Carolina": {Conference: "ACC", State: "NC", City: "Chapel Hill", PrimaryColor: "7BAFD4"},
	"Pittsburgh":     {Conference: "ACC", State: "PA", City: "Pittsburgh", PrimaryColor: "003594"},
	"SMU":            {Conference: "ACC", State: "TX", City: "Dallas", PrimaryColor: "0033A0"},
	"Stanford":       {Conference: "ACC", State: "CA", City: "Stanford", PrimaryColor: "8C1515"},
	"Syracuse":       {Conference: "ACC", State: "NY", City: "Syracuse", PrimaryColor: "F76900"},
	"Virginia":       {Conference: "ACC", State: "VA", City: "Charlottesville", PrimaryColor: "232D4B"},
	"Virginia Tech":  {Conference: "ACC", State: "VA", City: "Blacksburg", PrimaryColor: "630031"},
	"Wake Forest":    {Conference: "ACC", State: "NC", City: "Winston-Salem", PrimaryColor: "9E7E38"},

	// American
	"Army":          {Conference: "American", State: "NY", City: "West Point", PrimaryColor: "000000"},
	"Charlotte":     {Conference: "American", State: "NC", City: "Charlotte", PrimaryColor: "005035"},
	"East Carolina": {Conference: "American", State: "NC", City: "Greenville", PrimaryColor: "592A8A"},
	"FAU":           {Conference: "American", State: "FL", City: "Boca Raton", PrimaryColor: "003366"},
	"Memphis":       {Conference: "American", State: "TN", City: "Memphis", PrimaryColor: "003087"},
	"Navy":          {Conference: "American", State: "MD", City: "Annapolis", PrimaryColor: "00205B"},
	"North Texas":   {Conference: "American", State: "TX", City: "Denton", PrimaryColor: "00853E"},
	"Rice":          {Conference: "American", State: "TX", City: "Houston", PrimaryColor: "00205B"},
	"South Florida": {Conference: "American", State: "FL", City: "Tampa", PrimaryColor: "006747"},
	"Temple":        {Conference: "American", State: "PA", City: "Philadelphia", PrimaryColor: "9D2235"},
	"Tulane":        {Conference: "American", State: "LA", City: "New Orleans", PrimaryColor: "006747"},
	"Tulsa":         {Conference: "American", State: "OK", City: "Tulsa", PrimaryColor: "002D62"},
	"UAB":           {Conference: "American", State: "AL", City: "Birmingham", PrimaryColor: "1E6B52"},
	"UTSA":          {Conference: "American", State: "TX", City: "San Antonio", PrimaryColor: "0C2340"},

	// Mountain West
	"Air Force":       {Conference: "Mountain West", State: "CO", City: "Colorado Springs", PrimaryColor: "003087"},
	"Boise State":     {Conference: "Mountain West", State: "ID", City: "Boise", PrimaryColor: "0033A0"},
	"Colorado State":  {Conference: "Mountain West", State: "CO", City: "Fort Collins", PrimaryColor: "1E4D2B"},
	"Fresno State":    {Conference: "Mountain West", State: "CA", City: "Fresno", PrimaryColor: "CC0000"},
	"Hawaii":          {Conference: "Mountain West", State: "HI", City: "Honolulu", PrimaryColor: "024731"},
	"Nevada":          {Conference: "Mountain West", State: "NV", City: "Reno", PrimaryColor: "003366"},
	"New Mexico":      {Conference: "Mountain West", State: "NM", City: "Albuquerque", PrimaryColor: "BA0C2F"},
	"San Diego State": {Conference: "Mountain West", State: "CA", City: "San Diego", PrimaryColor: "CC0000"},
	"San Jose State":  {Conference: "Mountain West", State: "CA", City: "San Jose", PrimaryColor: "0055A2"},
	"UNLV":            {Conference: "Mountain West", State: "NV", City: "Las Vegas", PrimaryColor: "CC0000"},
	"Utah State":      {Conference: "Mountain West", State: "UT", City: "Logan", PrimaryColor: "0F2439"},
	"Wyoming":         {Conference: "Mountain West", State: "WY", City: "Laramie", PrimaryColor: "492F24"},

	// Sun Belt
	"Appalachian State": {Conference: "Sun Belt", State: "NC", City: "Boone", PrimaryColor: "000000"},
	"Arkansas State":    {Conference: "Sun Belt", State: "AR", City: "Jonesboro", PrimaryColor: "CC092F"},
	"Coastal Carolina":  {Conference: "Sun Belt", State: "SC", City: "Conway", PrimaryColor: "006F71"},
	"Georgia Southern":  {Conference: "Sun Belt", State: "GA", City: "Statesboro", PrimaryColor: "011E41"},
	"Georgia State":     {Conference: "Sun Belt", State: "GA", City: "Atlanta", PrimaryColor: "0039A6"},
	"James Madison":     {Conference: "Sun Belt", State: "VA", City: "Harrisonburg", PrimaryColor: "450084"},
	"Louisiana":         {Conference: "Sun Belt", State: "LA", City: "Lafayette", PrimaryColor: "CE181E"},
	"Louisiana Monroe":  {Conference: "Sun Belt", State: "LA", City: "Monroe", PrimaryColor: "6F263D"},
	"Marshall":          {Conference: "Sun Belt", State: "WV", City: "Huntington", PrimaryColor: "00B140"},
	"Old Dominion":      {Conference: "Sun Belt", State: "VA", City: "Norfolk", PrimaryColor: "003057"},
	"South Alabama":     {Conference: "Sun Belt", State: "AL", City: "Mobile", PrimaryColor: "00205B"},
	"Southern Miss":     {Conference: "Sun Belt", State: "MS", City: "Hattiesburg", PrimaryColor: "000000"},
	"Texas State":       {Conference: "Sun Belt", State: "TX", City: "San Marcos", PrimaryColor: "501214"},
	"Troy":              {Conference: "Sun Belt", State: "AL", City: "Troy", PrimaryColor: "8B2332"},

	// MAC
	"Akron":             {Conference: "MAC", State: "OH", City: "Akron", PrimaryColor: "041E42"},
	"Ball State":        {Conference: "MAC", State: "IN", City: "Muncie", PrimaryColor: "BA0C2F"},
	"Bowling Green":     {Conference: "MAC", State: "OH", City: "Bowling Green", PrimaryColor: "4F2C1D"},
	"Buffalo":           {Conference: "MAC", State: "NY", City: "Buffalo", PrimaryColor: "005BBB"},
	"Central Michigan":  {Conference: "MAC", State: "MI", City: "Mount Pleasant", PrimaryColor: "6A0032"},
	"Eastern Michigan":  {Conference: "MAC", State: "MI", City: "Ypsilanti", PrimaryColor: "006633"},
	"Kent State":        {Conference: "MAC", State: "OH", City: "Kent", PrimaryColor: "002664"},
	"Miami (OH)":        {Conference: "MAC", State: "OH", City: "Oxford", PrimaryColor: "C41E3A"},
	"Northern Illinois": {Conference: "MAC", State: "IL", City: "DeKalb", PrimaryColor: "BA0C2F"},
	"Ohio":              {Conference: "MAC", State: "OH", City: "Athens", PrimaryColor: "00694E"},
	"Toledo":            {Conference: "MAC", State: "OH", City: "Toledo", PrimaryColor: "003E7E"},
	"Western Michigan":  {Conference: "MAC", State: "MI", City: "Kalamazoo", PrimaryColor: "6C4023"},

	// Conference USA
	"FIU":                {Conference: "Conference USA", State: "FL", City: "Miami", PrimaryColor: "002F65"},
	"Jacksonville State": {Conference: "Conference USA", State: "AL", City: "Jacksonville", PrimaryColor: "CC0000"},
	"Kennesaw State":     {Conference: "Conference USA", State: "GA", City: "Kennesaw", PrimaryColor: "000000"},
	"Liberty":            {Conference: "Conference USA", State: "VA", City: "Lynchburg", PrimaryColor: "002D62"},
	"Louisiana Tech":     {Conference: "Conference USA", State: "LA", City: "Ruston", PrimaryColor: "002F8B"},
	"Middle Tennessee":   {Conference: "Conference USA", State: "TN", City: "Murfreesboro", PrimaryColor: "0066CC"},
	"New Mexico State":   {Conference: "Conference USA", State: "NM", City: "Las Cruces", PrimaryColor: "8B1C42"},
	"Sam Houston":        {Conference: "Conference USA", State: "TX", City: "Huntsville", PrimaryColor: "F37021"},
	"UTEP":               {Conference: "Conference USA", State: "TX", City: "El Paso", PrimaryColor: "FF8200"},
	"Western Kentucky":   {Conference: "Conference USA", State: "KY", City: "Bowling Green", PrimaryColor: "C60C30"},

	// Independents
	"Notre Dame": {Conference: "Independent", State: "IN", City: "South Bend", PrimaryColor: "0C2340"},
	"UConn":      {Conference: "Independent", State: "CT", City: "Storrs", PrimaryColor: "000E2F"},
	"UMass":      {Conference: "Independent", State: "MA", City: "Amherst", PrimaryColor: "881C1C"},
}

// aliasesByCanonical covers the provider's alternate spellings. Lookup is
// case-insensitive exact match; no fuzzy matching at this layer.
var aliasesByCanonical = map[string][]string{
	"Miami (OH)":        {"Miami (OH)", "Miami Ohio", "Miami-OH", "Miami RedHawks"},
	"Ole Miss":          {"Ole Miss", "Mississippi"},
	"USC":               {"USC", "Southern California"},
	"LSU":               {"LSU", "Louisiana State"},
	"UCF":               {"UCF", "Central Florida"},
	"SMU":               {"SMU", "Southern Methodist"},
	"BYU":               {"BYU", "Brigham Young"},
	"TCU":               {"TCU", "Texas Christian"},
	"UNLV":              {"UNLV", "Nevada-Las Vegas"},
	"UTSA":              {"UTSA", "Texas-San Antonio"},
	"UTEP":              {"UTEP", "Texas-El Paso"},
	"UAB":               {"UAB", "Alabama-Birmingham"},
	"FIU":               {"FIU", "Florida International"},
	"FAU":               {"FAU", "Florida Atlantic"},
	"NC State":          {"NC State", "North Carolina State"},
	"UConn":             {"UConn", "Connecticut"},
	"UMass":             {"UMass", "Massachusetts"},
	"Appalachian State": {"Appalachian State", "App State", "Appalachian"},
	"Hawaii":            {"Hawaii", "Hawai'i", "Hawai`i"},
	"San Jose State":    {"San Jose State", "San José State", "SJSU"},
	"Louisiana Monroe":  {"Louisiana Monroe", "UL Monroe", "Louisiana-Monroe", "ULM"},
	"Louisiana":         {"Louisiana", "Louisiana-Lafayette", "UL Lafayette", "ULL"},
}
