package core

// Entity is a unique identifier for a live simulation entity
// Ids are handed out in increasing order and never reused within a run; 0 is invalid
type Entity uint64
