package store

var MotifCondition = motifCondition
