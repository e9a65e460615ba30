package biodrying

// Version is the version of the simulator.
const Version = "1.0.0"
