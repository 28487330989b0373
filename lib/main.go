// Copyright 2026 The Cryptokit Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import "C"
import (
	"encoding/json"
	"unsafe"

	"github.com/scanhound/cryptokit"
)

type idResult struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

//export DigestWrapper
func DigestWrapper(message *C.char, length C.int) *C.char {
	return C.CString(cryptokit.Digest(C.GoBytes(unsafe.Pointer(message), length)))
}

//export ShortHashWrapper
func ShortHashWrapper(text *C.char) *C.char {
	return C.CString(cryptokit.ShortHash(C.GoString(text)))
}

//export SignWrapper
func SignWrapper(data *C.char, dataLen C.int, secret *C.char, secretLen C.int) *C.char {
	return C.CString(cryptokit.Sign(
		C.GoBytes(unsafe.Pointer(data), dataLen),
		C.GoBytes(unsafe.Pointer(secret), secretLen),
	))
}

//export VerifyWrapper
func VerifyWrapper(data *C.char, dataLen C.int, signature *C.char, secret *C.char, secretLen C.int) C.int {
	ok := cryptokit.Verify(
		C.GoBytes(unsafe.Pointer(data), dataLen),
		C.GoString(signature),
		C.GoBytes(unsafe.Pointer(secret), secretLen),
	)
	if ok {
		return 1
	}

	return 0
}

// SecureIDWrapper returns {"id": ...} or {"error": ...} as JSON, since a C caller
// has no other way to see why no identifier was issued.
//
//export SecureIDWrapper
func SecureIDWrapper(prefix *C.char, byteLength C.int) *C.char {
	return idJSON(cryptokit.SecureID(C.GoString(prefix), int(byteLength)))
}

//export KeyIDWrapper
func KeyIDWrapper() *C.char {
	return idJSON(cryptokit.KeyID())
}

func idJSON(id string, err error) *C.char {
	res := idResult{ID: id}
	if err != nil {
		res.Error = err.Error()
	}

	out, err := json.Marshal(res)
	if err != nil {
		return C.CString(`{"error":"failed to marshal result"}`)
	}

	return C.CString(string(out))
}

func main() {}
