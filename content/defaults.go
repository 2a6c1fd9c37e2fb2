package content

// DefaultExcuses is the compiled-in excuse list
var DefaultExcuses = []string{
	"I'm debugging a critical production issue.",
	"My internet is acting up.",
	"I'm waiting for a deploy to finish.",
	"My laptop needs to restart for updates.",
	"I forgot what day it is.",
	"My cat is sitting on my keyboard.",
	"My kid is home sick and just threw up on the floor mid-sentence.",
	"Daycare called and said I need to come now, not later.",
	"The plumber turned the water off and then disappeared.",
	"My webcam is doing that thing where it turns me into a potato.",
	"I burned something and now my kitchen is smoky.",
	"I'm on hold with someone who keeps coming back every 30 seconds to say 'thanks for waiting'.",
	"A tree fell and took out power lines near the house.",
	"I'm currently experiencing an unscheduled power outage caused by a rogue squirrel chewing through my main line..",
	"I'm trying to join from my car, but my Wi-Fi is only picking up carrier pigeons.",
	"My sourdough starter just exploded and I have to contain the fallout.",
	"I'm testing out a new noise-canceling helmet, so my audio might be spotty.",
	"There's a very aggressive pigeon trying to get into my window.",
	"I was told to evacuate temporarily due to a nearby issue.",
	"SWAT team just showed up on the street and everyone was told to shelter in place.",
	"Authorities are investigating a possible biohazard nearby.",
	"There's an unfolding situation involving something they won't name yet.",
	"A flock of aggressive geese cornered my neighbors and I need to help.",
	"There's a suspicious ice cream truck rolling down the street I need to monitor and report.",
	"I'm selling furniture on Craigslist and the buyer just showed up.",
	"Dog got into the garbage and ate some jalapeños, now I have to clean the carpet befor it stinks up.",
	"I've got a poor connection due to kids playing Fortnite.",
}

// DefaultPalette holds the retro carnival slice colors
var DefaultPalette = []HSL{
	{H: 0, S: 75, L: 50},   // Red
	{H: 35, S: 90, L: 55},  // Orange
	{H: 48, S: 95, L: 50},  // Yellow
	{H: 120, S: 60, L: 40}, // Green
	{H: 200, S: 70, L: 50}, // Blue
	{H: 280, S: 60, L: 50}, // Purple
	{H: 330, S: 70, L: 50}, // Pink
	{H: 15, S: 80, L: 45},  // Rust
	{H: 175, S: 60, L: 40}, // Teal
	{H: 55, S: 85, L: 50},  // Gold
}

// Decoration colors shared by the renderer
var (
	RimGold   = HSL{H: 43, S: 74, L: 49}
	BulbGold  = HSL{H: 48, S: 95, L: 70}
	BulbRed   = HSL{H: 0, S: 75, L: 60}
	HubBright = HSL{H: 43, S: 74, L: 60}
	HubDark   = HSL{H: 43, S: 74, L: 30}
)
