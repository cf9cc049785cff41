// Package cli is the GameZone command-line client.
//
// Given a command on the command line (for example "games" or
// "review <game-id> 5 great"), App.Run executes it once and returns; with no
// command it starts an interactive loop. Tokens issued at registration are kept
// per author name in the local store, and the active author's token is attached
// to every call. Type "help" in the loop for the command list.
package cli
