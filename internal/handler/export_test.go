package handler

// WriteError exposes writeError to the external test package.
var WriteError = writeError
