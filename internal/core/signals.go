package core

// HUD is the set of counters a game exposes to its UI after every tick.
// Fields a game does not use stay zero.
type HUD struct {
	Score       int
	Wave        int
	Distance    int // metres
	Troops      int
	Speed       int // km/h for the ski game
	Lives       int
	DamageLevel int
	Kills       int
	KillTarget  int
	BossHealth  int
	BossMax     int
}

// Reporter receives HUD updates. It never feeds back into the simulation.
type Reporter interface {
	Report(h HUD)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(h HUD)

// Report calls f(h).
func (f ReporterFunc) Report(h HUD) {
	f(h)
}

// Cue names an audio effect the simulation wants played.
type Cue string

// Cues emitted by the games.
const (
	CueShoot        Cue = "shoot"
	CueExplosion    Cue = "explosion"
	CuePowerup      Cue = "powerup"
	CueHit          Cue = "hit"
	CueDeath        Cue = "death"
	CueWaveComplete Cue = "waveComplete"
)

// CuePlayer plays fire-and-forget audio cues with an intensity in [0, 1].
type CuePlayer interface {
	Play(cue Cue, intensity float64)
}

// Signals bundles the optional collaborators a game talks to.
// The zero value is valid and drops everything.
type Signals struct {
	Reporter Reporter
	Audio    CuePlayer
	lastHUD  HUD
	reported bool
}

// Cue forwards a cue to the audio player if one is attached.
func (s *Signals) Cue(c Cue, intensity float64) {
	if s == nil || s.Audio == nil {
		return
	}
	s.Audio.Play(c, intensity)
}

// Publish sends h to the reporter when it differs from the last published HUD.
func (s *Signals) Publish(h HUD) {
	if s == nil || s.Reporter == nil {
		return
	}
	if s.reported && h == s.lastHUD {
		return
	}
	s.lastHUD = h
	s.reported = true
	s.Reporter.Report(h)
}

// Reset forgets the last published HUD so the next Publish always reports.
func (s *Signals) Reset() {
	if s == nil {
		return
	}
	s.reported = false
}

// Attachable is implemented by games that accept signal collaborators.
type Attachable interface {
	Attach(r Reporter, a CuePlayer)
}
