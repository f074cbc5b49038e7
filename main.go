package main

import "github.com/kongou411-oss/your-coach-plus-sub015/cmd/yourcoach"

func main() {
	yourcoach.Execute()
}
