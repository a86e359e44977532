package finboard

// Version is the version of the finboard CLI
const Version = "0.4.0"

// UserAgent is the default User-Agent header value.
const UserAgent = "finboard-cli/" + Version
