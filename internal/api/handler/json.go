package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json é o codificador compartilhado pelos handlers, compatível com a
// biblioteca padrão.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
