package core

// Version is the released version of swift-bridge
const Version = "0.1.0"
