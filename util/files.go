// Package util provides small filesystem helpers shared by other
// packages in this module.
package util

import (
	"fmt"
	"os"
)


func IsValidPath(path string) bool{
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err){
			return false
		}
		fmt.Println(err)
		return false
	} else {
		return true
	}
}
