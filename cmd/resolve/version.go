package main

// version is stamped at release time; left at dev default for source builds.
var version = "dev"
