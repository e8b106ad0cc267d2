package service

import "strconv"

func formatUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
