package imagepkg

import "github.com/allape/gogger"

var l = gogger.New("quizcard.image")
