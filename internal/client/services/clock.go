package services

import "time"

// timeNow is a test seam for the wall clock.
var timeNow = time.Now
