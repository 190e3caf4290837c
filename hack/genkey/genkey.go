package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/rsa"
	"crypto/x509"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	utillog "github.com/Azure/azmon-diag/pkg/util/log"
	utilpem "github.com/Azure/azmon-diag/pkg/util/pem"
	utiltls "github.com/Azure/azmon-diag/pkg/util/tls"
)

// run writes name.key and name.crt in PEM format, suitable for the
// cert_file_path and key_file_path keys of the plugin configuration.
func run(log *logrus.Entry, name string, flags flagsType) error {
	var signingKey *rsa.PrivateKey
	var signingCert *x509.Certificate

	if *flags.keyFile != "" {
		b, err := os.ReadFile(*flags.keyFile)
		if err != nil {
			return err
		}

		signingKey, err = utilpem.ParseFirstPrivateKey(b)
		if err != nil {
			return err
		}
	}

	if *flags.certFile != "" {
		b, err := os.ReadFile(*flags.certFile)
		if err != nil {
			return err
		}

		signingCert, err = utilpem.ParseFirstCertificate(b)
		if err != nil {
			return err
		}
	}

	key, cert, err := utiltls.GenerateKeyAndCertificate(name, signingKey, signingCert, *flags.ca, *flags.client)
	if err != nil {
		return err
	}

	b, err := utilpem.Encode(key)
	if err != nil {
		return err
	}

	err = os.WriteFile(name+".key", b, 0600)
	if err != nil {
		return err
	}

	b, err = utilpem.Encode(cert...)
	if err != nil {
		return err
	}

	err = os.WriteFile(name+".crt", b, 0666)
	if err != nil {
		return err
	}

	log.Infof("wrote %s.key and %s.crt, expires %s", name, name, cert[0].NotAfter)
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s commonName\n", os.Args[0])
	flag.PrintDefaults()
}

type flagsType struct {
	client   *bool
	ca       *bool
	keyFile  *string
	certFile *string
}

func main() {
	flags := flagsType{
		client:   flag.Bool("client", true, "generate client certificate"),
		ca:       flag.Bool("ca", false, "generate ca certificate"),
		keyFile:  flag.String("keyFile", "", `file containing signing key in pem format (default "" - self-signed)`),
		certFile: flag.String("certFile", "", `file containing signing certificate in pem format (default "" - self-signed)`),
	}

	flag.Usage = usage
	flag.Parse()

	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := utillog.GetLogger()

	if err := run(log, flag.Arg(0), flags); err != nil {
		log.Fatal(err)
	}
}
