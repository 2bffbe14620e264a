package lvmarkov

// Version is the release of the module reported by `lvmarkov version`.
const Version = "0.3.0"
