package filestore

import "github.com/elgopher/yala/logger"

// Logger logs nothing until adapter is set:
//
//	filestore.Logger.SetAdapter(printer.StdoutAdapter())
var Logger logger.Global
