package internal

// Version is the current sampleproc version
const Version = "0.3.1"
