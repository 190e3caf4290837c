package pem

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
)

type Encodable interface {
	*x509.Certificate | *rsa.PrivateKey
}

// Encode returns the PEM encoding of inputs, concatenated in order.
func Encode[V Encodable](inputs ...V) (r []byte, err error) {
	for _, i := range inputs {
		var block *pem.Block

		switch t := any(i).(type) {
		case *x509.Certificate:
			block = &pem.Block{Type: "CERTIFICATE", Bytes: t.Raw}
		case *rsa.PrivateKey:
			block = &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(t)}
		}

		r = append(r, pem.EncodeToMemory(block)...)
	}
	return
}
