package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Azure/azmon-diag/pkg/util/resource"
)

var (
	_, thisfile, _, _ = runtime.Caller(0)
	repopath          = strings.Replace(thisfile, "pkg/util/log/log.go", "", -1)
)

// GetLogger returns a consistently configured log entry
func GetLogger() *logrus.Entry {
	logrus.SetReportCaller(true)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		CallerPrettyfier: RelativeFilePathPrettier,
	})

	return logrus.NewEntry(logrus.StandardLogger())
}

// RelativeFilePathPrettier changes absolute paths with relative paths
func RelativeFilePathPrettier(f *runtime.Frame) (string, string) {
	file := strings.TrimPrefix(f.File, repopath)
	function := f.Function[strings.LastIndexByte(f.Function, '/')+1:]
	return fmt.Sprintf("%s()", function), fmt.Sprintf(" %s:%d", file, f.Line)
}

// EnrichWithResourceID sets the resource fields of the log entry from a
// fully qualified resource ID. Unparsable IDs are recorded verbatim.
func EnrichWithResourceID(log *logrus.Entry, resourceID string) *logrus.Entry {
	r, err := resource.Parse(resourceID)
	if err != nil {
		return log.WithField("resource_id", strings.ToLower(resourceID))
	}

	return log.WithFields(logrus.Fields{
		"resource_id":     strings.ToLower(resourceID),
		"subscription_id": r.SubscriptionID,
		"resource_group":  r.ResourceGroup,
		"resource_name":   r.ResourceName,
	})
}

// fileHook writes every entry as a JSON line to w, independent of the
// formatter configured on the logger.
type fileHook struct {
	w         io.Writer
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}

// AddFileSink appends every entry logged through log to the file at path.
// The file is opened in append mode and is never truncated. Rotated files
// are kept indefinitely. The returned Closer must be closed before the
// process exits.
func AddFileSink(log *logrus.Entry, path string) io.Closer {
	l := &lumberjack.Logger{
		Filename: path,
		MaxSize:  100, // megabytes
	}

	addHook(log, l)

	return l
}

func addHook(log *logrus.Entry, w io.Writer) {
	log.Logger.AddHook(&fileHook{
		w: w,
		formatter: &logrus.JSONFormatter{
			CallerPrettyfier: RelativeFilePathPrettier,
		},
	})
}
