package pem

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// ParseFirstCertificate returns the first CERTIFICATE block in b, skipping
// any other block types such as private keys.
func ParseFirstCertificate(b []byte) (*x509.Certificate, error) {
	block := firstBlock(b, "CERTIFICATE")
	if block == nil {
		return nil, errors.New("unable to find certificate")
	}

	return x509.ParseCertificate(block.Bytes)
}

// ParseFirstPrivateKey returns the first RSA key in b, in either PKCS#1 or
// PKCS#8 wrapping.
func ParseFirstPrivateKey(b []byte) (*rsa.PrivateKey, error) {
	block := firstBlock(b, "RSA PRIVATE KEY", "PRIVATE KEY")
	if block == nil {
		return nil, errors.New("unable to find key")
	}

	if block.Type == "RSA PRIVATE KEY" {
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	}

	k, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	key, ok := k.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unimplemented private key type %T in PKCS#8 wrapping", k)
	}

	return key, nil
}

func firstBlock(b []byte, types ...string) *pem.Block {
	for {
		var block *pem.Block
		block, b = pem.Decode(b)
		if block == nil {
			return nil
		}

		for _, t := range types {
			if block.Type == t {
				return block
			}
		}
	}
}
