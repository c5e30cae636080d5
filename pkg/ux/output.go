// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var Logger *UserLog

// UserLog prints to the user and mirrors every line to the log file
type UserLog struct {
	log    logging.Logger
	Writer io.Writer
}

func NewUserLog(log logging.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = &UserLog{
			log:    log,
			Writer: userwriter,
		}
	}
}

// PrintToUser prints msg directly on the screen, but also to log file
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	ul.print(fmt.Sprintf(msg, args...) + "\n")
}

func (ul *UserLog) print(msg string) {
	if ul != nil {
		fmt.Fprint(ul.Writer, msg)
		ul.log.Info(strings.TrimSuffix(msg, "\n"))
	} else {
		fmt.Print(msg)
	}
}

// Info prints to the log file
func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.log.Info(fmt.Sprintf(msg, args...))
}

// Error prints to the log file
func (ul *UserLog) Error(msg string, args ...interface{}) {
	ul.log.Error(fmt.Sprintf(msg, args...))
}

// GreenCheckmarkToUser prints a green checkmark to the user before the message
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	checkmark := "✓"
	green := color.New(color.FgHiGreen).SprintFunc()
	ul.PrintToUser(green(checkmark)+" "+msg, args...)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	xmark := "✗"
	red := color.New(color.FgHiRed).SprintFunc()
	ul.PrintToUser(red(xmark)+" "+msg, args...)
}

func (ul *UserLog) PrintLineSeparator() {
	ul.PrintToUser("==============================================")
}

func ConvertToStringWithThousandSeparator(input uint64) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%d", input)
	return strings.ReplaceAll(s, ",", "_")
}

// FormatBigWithThousandSeparator is [ConvertToStringWithThousandSeparator]
// for values that may not fit an uint64
func FormatBigWithThousandSeparator(n *big.Int) string {
	if n == nil {
		return "-"
	}
	if n.IsUint64() {
		return ConvertToStringWithThousandSeparator(n.Uint64())
	}
	s := n.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return sign + strings.Join(groups, "_")
}

// FormatCelsius prints a temperature given in hundredths of a degree
func FormatCelsius(hundredths int32) string {
	return fmt.Sprintf("%.2f °C", float64(hundredths)/100)
}
