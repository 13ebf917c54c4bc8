package adaptivecardbuilder

// Version is the library version, surfaced by the CLI and the MCP server.
const Version = "0.2.0"
