package measure

// ExportedStartTimer exposes startTimer with an injectable clock.
var ExportedStartTimer = startTimer
