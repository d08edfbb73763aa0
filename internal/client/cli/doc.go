// Package cli provides the interactive command-line uploader.
//
// It wires configuration, the local session database, the upload services
// and the authorization callback server, then runs a REPL:
//
//	authorize        print the backend URL that starts Google Drive consent
//	select <paths>   choose the images to upload (replaces the selection)
//	files            list the current selection
//	upload           upload the selection, one file at a time
//	status           print every file's status and the last message
//	disconnect       forget the authorization locally
//	signin [token]   switch to a custom-token identity
//	whoami           show the session identity
//	exit | quit      leave the program
//
// Every status transition is printed as it happens by a renderer that
// subscribes to the StatusStore. See App, NewApp and runREPL.
package cli
