// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/accounts/abi/bind"
)

func removeSurroundingParenthesis(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > 0 {
		if string(s[0]) != "(" || string(s[len(s)-1]) != ")" {
			return "", fmt.Errorf("expected esp %q to be surrounded by parenthesis", s)
		}
		s = s[1 : len(s)-1]
	}
	return s, nil
}

// splits a comma or space separated type list, keeping parenthesized
// tuple bodies as a single word
func getWords(s string) []string {
	words := []string{}
	word := ""
	insideParenthesis := false
	for _, r := range s {
		c := string(r)
		if insideParenthesis {
			if c == ")" {
				words = append(words, word)
				word = ""
				insideParenthesis = false
			} else {
				word += c
			}
			continue
		}
		if c == " " || c == "," || c == "(" {
			if word != "" {
				words = append(words, word)
				word = ""
			}
		}
		if c == " " || c == "," {
			continue
		}
		if c == "(" {
			insideParenthesis = true
			continue
		}
		word += c
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}

// tuple components get positional names, as the abi codec maps them
// to struct fields
func getMap(types []string, componentNames bool) []map[string]interface{} {
	r := []map[string]interface{}{}
	for i, t := range types {
		m := map[string]interface{}{}
		if strings.ContainsAny(t, " ,") {
			m["components"] = getMap(getWords(t), true)
			m["internaltype"] = "tuple"
			m["type"] = "tuple"
		} else {
			m["internaltype"] = t
			m["type"] = t
		}
		m["name"] = ""
		if componentNames {
			m["name"] = fmt.Sprintf("field%d", i)
		}
		r = append(r, m)
	}
	return r
}

// ParseMethodEsp builds a single method ABI out of an inline method
// description like "read(uint32)->(int32[],uint256[])".
// Returns the method name and the ABI JSON
func ParseMethodEsp(
	methodEsp string,
	paid bool,
	view bool,
) (string, string, error) {
	index := strings.Index(methodEsp, "(")
	if index == -1 {
		return methodEsp, "", nil
	}
	methodName := methodEsp[:index]
	methodTypes := methodEsp[index:]
	methodInputs := ""
	methodOutputs := ""
	index = strings.Index(methodTypes, "->")
	if index == -1 {
		methodInputs = methodTypes
	} else {
		methodInputs = methodTypes[:index]
		methodOutputs = methodTypes[index+2:]
	}
	var err error
	methodInputs, err = removeSurroundingParenthesis(methodInputs)
	if err != nil {
		return "", "", err
	}
	methodOutputs, err = removeSurroundingParenthesis(methodOutputs)
	if err != nil {
		return "", "", err
	}
	abiMap := []map[string]interface{}{
		{
			"inputs":          getMap(getWords(methodInputs), false),
			"outputs":         getMap(getWords(methodOutputs), false),
			"name":            methodName,
			"statemutability": "nonpayable",
			"type":            "function",
		},
	}
	if paid {
		abiMap[0]["statemutability"] = "payable"
	}
	if view {
		abiMap[0]["statemutability"] = "view"
	}
	abiBytes, err := json.MarshalIndent(abiMap, "", "  ")
	if err != nil {
		return "", "", err
	}
	return methodName, string(abiBytes), nil
}

// LoadABI parses a JSON ABI document
func LoadABI(abiJSON []byte) (*abi.ABI, error) {
	metadata := &bind.MetaData{
		ABI: string(abiJSON),
	}
	parsed, err := metadata.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failure parsing contract abi: %w", err)
	}
	return parsed, nil
}

// LoadMethodEsp parses an inline method description into a view method ABI
func LoadMethodEsp(methodEsp string) (string, *abi.ABI, error) {
	methodName, methodABI, err := ParseMethodEsp(methodEsp, false, true)
	if err != nil {
		return "", nil, err
	}
	if methodABI == "" {
		return "", nil, fmt.Errorf("method esp %q does not declare its types", methodEsp)
	}
	parsed, err := LoadABI([]byte(methodABI))
	if err != nil {
		return "", nil, err
	}
	return methodName, parsed, nil
}
